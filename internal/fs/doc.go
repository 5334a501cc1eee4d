// Package fs provides filesystem abstractions for testability and fault injection.
//
// The package defines two key interfaces:
//
//   - [File]: Represents an open file with read/write/sync capabilities
//   - [FileSystem]: Abstracts filesystem operations (open, remove, rename, etc.)
//
// # Implementations
//
//   - [LocalFS]: Production implementation using standard os package
//   - [FaultyFS]: Test utility for fault injection (simulate I/O errors)
//
// Production code should use fs.Default (which is [LocalFS]). Tests can inject
// [FaultyFS] to simulate mid-rewrite failures:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".tmp", fs.Fault{FailAfterBytes: 1024})
//	// inject ffs into the store under test
package fs
