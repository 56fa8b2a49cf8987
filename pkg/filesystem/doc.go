// Package filesystem provides filesystem implementations for dokv.
//
// This package contains implementations of the types.FS interface:
// the operating system filesystem used in production and an afero-backed
// filesystem used to run the store against memory or read-only layers.
package filesystem
