package mimedb

// overrides rewrites specific incoming media types for specific extensions
// before conflict resolution runs. The entries cover duplicate or
// superseded registrations that common mime databases still carry.
var overrides = map[string]map[MediaType]MediaType{
	// Pre-RFC 8081 font registrations, superseded by the font/ tree.
	".ttf":   {"application/x-font-ttf": "font/ttf"},
	".otf":   {"application/x-font-otf": "font/otf"},
	".woff":  {"application/font-woff": "font/woff"},
	".woff2": {"application/font-woff2": "font/woff2"},
	// Debian lists .ent both under chemical/x-pdb and as an XML external
	// entity; the XML reading is the one a web server should serve.
	".ent": {"chemical/x-pdb": "text/xml"},
}
