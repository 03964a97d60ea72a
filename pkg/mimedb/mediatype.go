package mimedb

import "strings"

// OctetStream is the server's catch-all media type. The registry also
// stores it as the marker for a conflict it could not resolve.
const OctetStream MediaType = "application/octet-stream"

// MediaType is a media type string of the form "type/subtype".
type MediaType string

// Experimental reports whether the type or the subtype carries the
// historical "x-" prefix for non-standardized types.
func (m MediaType) Experimental() bool {
	major, minor := m.split()

	return strings.HasPrefix(major, "x-") || strings.HasPrefix(minor, "x-")
}

// Vendor reports whether the subtype carries IANA's "vnd." vendor prefix.
func (m MediaType) Vendor() bool {
	_, minor := m.split()

	return strings.HasPrefix(minor, "vnd.")
}

func (m MediaType) split() (major, minor string) {
	major, minor, _ = strings.Cut(string(m), "/")

	return major, minor
}
