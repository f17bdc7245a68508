// Package vmap implements the insertion-ordered, compound-owning map that
// backs the value runtime's Map type: key-value pairs live in a flat slice
// in insertion order, and a variable-width open-addressing hash table
// (one slot per key, item width chosen by capacity so small maps don't pay
// for 8-byte slots) maps a key's hash to its position in that slice.
//
// Map is generic over the cell type (Compoundish) for the same reason
// package vlist is: it lets this package be built, tested, and instantiated
// as Map[value.Value] from package value without an import cycle. The
// hash/equal functions are injected at construction time, same as vlist's
// destroy/clone, since only package value's dispatch knows how to hash or
// compare a V by its dynamic type.
package vmap
