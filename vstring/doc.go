// Package vstring implements the adaptive variable-width Unicode string
// that backs the value runtime's String type: a small string lives inline
// with no heap allocation at all, and storage width per code point widens
// from 1 to 4 bytes only as wide code points actually get inserted.
//
// Unlike the reference implementation, which shuffles bytes in place to
// promote a string's storage width without a second buffer, this package
// decodes to code points and re-encodes on any width change. Go's
// allocator and GC make that the idiomatic choice here; the byte-level
// trick only paid for itself against a hand-rolled allocator.
//
// CharPtr models a non-owning, read-only view over an external narrow,
// UTF-8, or UTF-32 buffer — it hashes and compares as a string so a
// borrowed C-string can be used to look up an owned-string map key
// without ever allocating a copy.
package vstring
