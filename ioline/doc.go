// Package ioline defines the consumer-side interfaces the value runtime's
// File and StringIO types are built on — File, FileReader, FileWriter, and
// LineReader — and provides two concrete implementations: osFile, backed
// by a real OS file descriptor, and StringIO, an in-memory buffer useful
// for tests and for building strings line by line.
//
// Every operation that can fail returns a status.Status rather than a Go
// error, the same propagation discipline the rest of the value runtime
// uses, so callers holding a value.Value never need a second error type.
package ioline
