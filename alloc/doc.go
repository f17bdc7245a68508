// Package alloc defines the pluggable allocator contract value payloads and
// container backing arrays are created through, plus four concrete
// implementations: a standard heap adapter, a panic-on-failure wrapper
// around it, a debug adapter that detects out-of-bounds writes, and a
// guard-page adapter.
//
// Type descriptors in package registry do not carry an Allocator, and the
// value, vstring, vlist and vmap packages allocate on the Go heap directly;
// these allocators are used only by code that calls them itself.
package alloc
