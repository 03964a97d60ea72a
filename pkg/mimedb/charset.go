package mimedb

// charsetSubtypes lists the text/ subtypes served with an explicit UTF-8
// charset parameter. html is deliberately absent: HTML documents declare
// their encoding in-document, and the header value would override it.
// markdown is included because it has no universally defined default.
var charsetSubtypes = map[string]struct{}{
	"calendar":   {},
	"css":        {},
	"csv":        {},
	"javascript": {},
	"markdown":   {},
	"plain":      {},
	"vcard":      {},
	"vtt":        {},
	"xml":        {},
}

// WithCharset returns the media type annotated with charset=utf-8 when it
// is a text/ subtype that needs one, and unchanged otherwise. The
// annotation is applied at emission only; registry values stay bare.
func (m MediaType) WithCharset() MediaType {
	major, minor := m.split()
	if major != "text" {
		return m
	}

	if _, ok := charsetSubtypes[minor]; !ok {
		return m
	}

	return m + ";charset=utf-8"
}
