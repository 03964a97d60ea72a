package mimedb_test

import (
	"testing"

	"github.com/devantler-tech/mimegen/pkg/mimedb"
	"github.com/stretchr/testify/assert"
)

func TestMediaTypePredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mediatype    mimedb.MediaType
		experimental bool
		vendor       bool
	}{
		{"plain type", "text/plain", false, false},
		{"experimental subtype", "application/x-shockwave-flash", true, false},
		{"experimental top-level type", "x-world/x-vrml", true, false},
		{"vendor subtype", "application/vnd.ms-excel", false, true},
		{"x- inside subtype is not experimental", "application/pgp-signature", false, false},
		{"vnd not at subtype start", "application/davmount+xml", false, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.experimental, test.mediatype.Experimental())
			assert.Equal(t, test.vendor, test.mediatype.Vendor())
		})
	}
}

func TestWithCharset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mediatype mimedb.MediaType
		expected  mimedb.MediaType
	}{
		{"csv annotated", "text/csv", "text/csv;charset=utf-8"},
		{"plain annotated", "text/plain", "text/plain;charset=utf-8"},
		{"markdown annotated", "text/markdown", "text/markdown;charset=utf-8"},
		{"javascript annotated", "text/javascript", "text/javascript;charset=utf-8"},
		{"html declares its own charset", "text/html", "text/html"},
		{"unknown text subtype untouched", "text/x-makefile", "text/x-makefile"},
		{"non-text never annotated", "application/xml", "application/xml"},
		{"octet-stream untouched", mimedb.OctetStream, mimedb.OctetStream},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expected, test.mediatype.WithCharset())
		})
	}
}
