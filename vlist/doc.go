// Package vlist implements the ordered, compound-owning list that backs
// the value runtime's List type: appending a compound item registers the
// list as one of its parents via package compound, so the cycle tracker
// sees the ownership edge.
//
// List is generic over the cell type (Compoundish) for the same reason
// package registry is generic: it lets this package be built and tested
// before package value exists, and instantiated as List[value.Value]
// without an import cycle.
package vlist
