package mimedb

// ianaGaps fills registrations missing from common mime databases and
// applies the WHATWG remap of JavaScript to text/javascript. Each entry
// runs through the full conflict resolver, so a primary observation can
// still out-rank it when the ladder favors the existing value.
var ianaGaps = []Observation{
	{Ext: ".dtd", Type: "application/xml-dtd"},
	{Ext: ".js", Type: "text/javascript"},
	{Ext: ".mjs", Type: "text/javascript"},
	{Ext: ".md", Type: "text/markdown"},
	{Ext: ".markdown", Type: "text/markdown"},
	{Ext: ".vtt", Type: "text/vtt"},
	{Ext: ".wasm", Type: "application/wasm"},
	{Ext: ".webmanifest", Type: "application/manifest+json"},
	{Ext: ".avif", Type: "image/avif"},
}

// usefulExtras captures archive and documentation conventions that have no
// registered type. They apply only when the extension is still unmapped;
// any live entry, including the octet-stream fallback, suppresses them.
// The two bare names never collide with dotted suffixes by construction.
var usefulExtras = []Observation{
	{Ext: ".tar.gz", Type: "application/x-gtar-compressed"},
	{Ext: ".tgz", Type: "application/x-gtar-compressed"},
	{Ext: ".log", Type: "text/plain"},
	{Ext: ".conf", Type: "text/plain"},
	{Ext: ".spec", Type: "text/plain"},
	{Ext: ".patch", Type: "text/x-diff"},
	{Ext: ".diff", Type: "text/x-diff"},
	{Ext: "README", Type: "text/plain"},
	{Ext: "Makefile", Type: "text/x-makefile"},
}

// ApplySupplements merges the fixed supplemental batches into the registry
// after the primary input is exhausted: IANA gaps first, useful extras
// second, each batch in its declared order.
func ApplySupplements(registry *Registry) {
	for _, obs := range ianaGaps {
		registry.Add(obs.Ext, obs.Type)
	}

	for _, obs := range usefulExtras {
		registry.AddIfAbsent(obs.Ext, obs.Type)
	}
}
