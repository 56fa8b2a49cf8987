// Package types defines the core types and interfaces shared across dokv.
// This includes the FS abstraction the store writes through and the
// result structures returned by the commands layer.
package types
