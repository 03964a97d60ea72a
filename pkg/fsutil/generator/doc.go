// Package generator provides an interface for generating files from code.
//
// Key functionality:
//   - Generator[T, Options]: Generic interface for content generation
//   - Generate: Transform model into string representation
//
// Subpackages:
//   - lighttpd: lighttpd mimetype.assign configuration generator
package generator
