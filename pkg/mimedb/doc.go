// Package mimedb resolves a system extension→media-type database into a
// single live media type per extension.
//
// Key functionality:
//   - Line parsing: ParseLine, Load
//   - Conflict resolution: Registry
//   - Supplemental batches: ApplySupplements
//   - Emission helpers: MediaType.WithCharset
package mimedb
