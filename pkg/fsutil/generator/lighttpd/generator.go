// Package lighttpdgenerator renders a resolved mime registry as a lighttpd
// mimetype.assign configuration block.
package lighttpdgenerator

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/devantler-tech/mimegen/pkg/fsutil"
	"github.com/devantler-tech/mimegen/pkg/mimedb"
)

// Options controls where the generated configuration goes.
type Options struct {
	// Output is an optional file path. When empty the caller handles the
	// returned string itself.
	Output string
	// Force overwrites an existing output file.
	Force bool
}

// Generator generates a lighttpd mimetype.assign block.
type Generator struct{}

// NewGenerator creates and returns a new Generator instance.
func NewGenerator() *Generator {
	return &Generator{}
}

const header = `# created by mimegen

#######################################################################
##
##  MimeType handling
## -------------------
##
## https://redmine.lighttpd.net/projects/lighttpd/wiki/Mimetype_assignDetails
##

mimetype.assign = (
`

// The trailing catch-all makes the server cache files whose suffix matched
// nothing above it.
const footer = `
	# enable caching for unknown mime types:
	"" => "application/octet-stream"
)
`

// Generate renders the entries in their serving order, annotates text
// types with their charset, and writes the result to opts.Output when set.
// Output is byte-identical across runs for identical entries.
func (g *Generator) Generate(entries []mimedb.Entry, opts Options) (string, error) {
	sorted := make([]mimedb.Entry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)

	var builder strings.Builder

	builder.WriteString(header)

	for _, entry := range sorted {
		fmt.Fprintf(&builder, "\t\"%s\" => \"%s\",\n", entry.Ext, entry.Type.WithCharset())
	}

	builder.WriteString(footer)

	out := builder.String()

	if opts.Output != "" {
		result, err := fsutil.TryWriteFile(out, opts.Output, opts.Force)
		if err != nil {
			return "", fmt.Errorf("write mimetype config: %w", err)
		}

		return result, nil
	}

	return out, nil
}

// nonStandardToken marks x- and vnd. tokens so that experimental and
// vendor media types order after plain ones. '~' compares greater than
// every character the media type grammar allows.
var nonStandardToken = regexp.MustCompile(`(^|/)(x-|vnd\.)`)

func sortKey(mediatype mimedb.MediaType) string {
	return nonStandardToken.ReplaceAllString(string(mediatype), "$1~$2")
}

// sortEntries orders entries for first-match-wins suffix serving: suffixes
// with more dots first, so ".tar.gz" is matched before the ".gz" it
// contains, then plain media types before experimental and vendor ones,
// then extension as the final tie break.
func sortEntries(entries []mimedb.Entry) {
	slices.SortFunc(entries, func(a, b mimedb.Entry) int {
		if diff := strings.Count(b.Ext, ".") - strings.Count(a.Ext, "."); diff != 0 {
			return diff
		}

		if diff := strings.Compare(sortKey(a.Type), sortKey(b.Type)); diff != 0 {
			return diff
		}

		return strings.Compare(a.Ext, b.Ext)
	})
}
