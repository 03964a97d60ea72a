package mimedb

import (
	"regexp"
	"strings"
)

// Observation is one (extension, media type) pair extracted from the mime
// database.
type Observation struct {
	Ext  string
	Type MediaType
}

// mimeLine matches "mediatype ext1 ext2 ...". The media type token allows
// lowercase letters, digits and "/+.-"; extension tokens allow lowercase
// letters, digits and "+.-".
var mimeLine = regexp.MustCompile(`^([a-z0-9/+.-]+)[ \t]+([a-z0-9+.-]+(?:[ \t]+[a-z0-9+.-]+)*)$`)

// ParseLine extracts the observations listed on one line of the mime
// database. Everything from the first '#' onward is a comment. Lines that
// do not match the two-token grammar, including type-only registrations
// without extensions, produce no observations; that is not an error.
func ParseLine(line string) []Observation {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}

	line = strings.TrimSpace(line)

	match := mimeLine.FindStringSubmatch(line)
	if match == nil {
		return nil
	}

	mediatype := MediaType(match[1])
	extensions := strings.Fields(match[2])

	observations := make([]Observation, 0, len(extensions))
	for _, ext := range extensions {
		observations = append(observations, Observation{Ext: "." + ext, Type: mediatype})
	}

	return observations
}
