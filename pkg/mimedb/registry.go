package mimedb

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Entry is one resolved extension mapping, as handed to the emitter.
type Entry struct {
	Ext  string
	Type MediaType
}

// Registry resolves repeated, possibly conflicting observations of the
// same extension into exactly one live media type per extension.
//
// Extension identity is case insensitive; the casing of the first
// occurrence wins and every later observation is coerced to it. The
// registry is built in a single pass on one goroutine and is not safe for
// concurrent use.
type Registry struct {
	types  map[string]MediaType // keyed by first-seen casing
	casing map[string]string    // lowercased identity -> first-seen casing
	diag   *logrus.Logger
}

// NewRegistry returns an empty registry. Unresolved conflicts are reported
// on diag at debug level; they never fail the run.
func NewRegistry(diag *logrus.Logger) *Registry {
	return &Registry{
		types:  make(map[string]MediaType),
		casing: make(map[string]string),
		diag:   diag,
	}
}

// Add records one observation, resolving any conflict with the current
// value for ext. The outcome can depend on the order observations arrive
// in, so callers must replay them in source order.
func (r *Registry) Add(ext string, mediatype MediaType) {
	ext = r.normalize(ext)

	if substitute, ok := overrides[ext][mediatype]; ok {
		mediatype = substitute
	}

	existing, ok := r.types[ext]
	if !ok {
		r.types[ext] = mediatype

		return
	}

	r.types[ext] = r.resolve(ext, existing, mediatype)
}

// AddIfAbsent records the observation only when nothing at all is mapped
// for ext, bypassing conflict resolution. Any live entry suppresses it,
// even when that entry is the octet-stream fallback.
func (r *Registry) AddIfAbsent(ext string, mediatype MediaType) {
	ext = r.normalize(ext)

	if _, ok := r.types[ext]; ok {
		return
	}

	r.types[ext] = mediatype
}

// Lookup returns the live media type for ext's case-insensitive identity.
func (r *Registry) Lookup(ext string) (MediaType, bool) {
	first, ok := r.casing[strings.ToLower(ext)]
	if !ok {
		return "", false
	}

	mediatype, ok := r.types[first]

	return mediatype, ok
}

// Entries returns a snapshot of all live mappings in unspecified order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.types))
	for ext, mediatype := range r.types {
		entries = append(entries, Entry{Ext: ext, Type: mediatype})
	}

	return entries
}

// Len returns the number of live mappings.
func (r *Registry) Len() int {
	return len(r.types)
}

// normalize coerces ext to the first-seen casing of its case-insensitive
// identity, registering that casing on first sight.
func (r *Registry) normalize(ext string) string {
	key := strings.ToLower(ext)
	if first, ok := r.casing[key]; ok {
		return first
	}

	r.casing[key] = ext

	return ext
}

// resolve applies the precedence ladder to the existing value and a new
// candidate. The rule order is load bearing: experimental is checked
// before the text/application tie, which is checked before vendor.
// Swapping rules changes the outcome for some real media type pairs.
func (r *Registry) resolve(ext string, existing, candidate MediaType) MediaType {
	if candidate == existing {
		return existing
	}

	// A resolvable candidate always supersedes the fallback marker.
	if existing == OctetStream {
		return candidate
	}

	if existing.Experimental() != candidate.Experimental() {
		if existing.Experimental() {
			return candidate
		}

		return existing
	}

	if preferred := textOverApplication(existing, candidate); preferred != "" {
		return preferred
	}

	if existing.Vendor() != candidate.Vendor() {
		if existing.Vendor() {
			return candidate
		}

		return existing
	}

	r.diag.WithFields(logrus.Fields{
		"extension": ext,
		"attempted": candidate,
		"existing":  existing,
	}).Debug("unresolved media type conflict, storing " + string(OctetStream))

	return OctetStream
}

// textOverApplication returns the text/ variant when the two types share a
// subtype and differ only in text versus application, and "" otherwise.
func textOverApplication(a, b MediaType) MediaType {
	aMajor, aMinor := a.split()
	bMajor, bMinor := b.split()

	if aMinor != bMinor {
		return ""
	}

	if aMajor == "text" && bMajor == "application" {
		return a
	}

	if aMajor == "application" && bMajor == "text" {
		return b
	}

	return ""
}
