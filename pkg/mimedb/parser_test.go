package mimedb_test

import (
	"testing"

	"github.com/devantler-tech/mimegen/pkg/mimedb"
	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []mimedb.Observation
	}{
		{"empty line", "", nil},
		{"whitespace only", "   \t ", nil},
		{"comment line", "# this is a comment", nil},
		{"type without extensions", "application/activemessage", nil},
		{"type with trailing whitespace only", "application/activemessage\t\t", nil},
		{
			"single extension",
			"application/pdf\tpdf",
			[]mimedb.Observation{{Ext: ".pdf", Type: "application/pdf"}},
		},
		{
			"multiple extensions",
			"image/jpeg\t\tjpeg jpg jpe",
			[]mimedb.Observation{
				{Ext: ".jpeg", Type: "image/jpeg"},
				{Ext: ".jpg", Type: "image/jpeg"},
				{Ext: ".jpe", Type: "image/jpeg"},
			},
		},
		{
			"trailing comment stripped",
			"text/csv csv # spreadsheets",
			[]mimedb.Observation{{Ext: ".csv", Type: "text/csv"}},
		},
		{
			"plus dot and dash in tokens",
			"image/svg+xml svg svgz",
			[]mimedb.Observation{
				{Ext: ".svg", Type: "image/svg+xml"},
				{Ext: ".svgz", Type: "image/svg+xml"},
			},
		},
		{
			"vendor type",
			"application/vnd.ms-excel xls",
			[]mimedb.Observation{{Ext: ".xls", Type: "application/vnd.ms-excel"}},
		},
		{"uppercase media type rejected", "TEXT/PLAIN txt", nil},
		{"uppercase extension rejected", "text/plain TXT", nil},
		{"illegal character in extension", "text/plain t_xt", nil},
		{"line fully commented out", "#text/plain txt", nil},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			result := mimedb.ParseLine(test.input)

			assert.Equal(t, test.expected, result)
		})
	}
}
