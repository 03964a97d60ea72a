// Package fsutil provides utilities for filesystem operations.
//
// Key functionality:
//   - File writing: TryWriteFile
//
// Subpackages:
//   - generator: configuration generation
package fsutil
