// Package value is the core dynamic-value runtime: a tagged cell type
// (Value) that can hold null, bool, signed/unsigned integers, a float,
// an adaptive string, a non-owning C-string view, a status, or a compound
// (list, map, or user-defined) payload, dispatched through the shared
// registry.Table the way the reference implementation dispatches through
// its global type table.
//
// The reference implementation packs every variant into one 16-byte cell
// so equality and move can be done as two word compares/copies. Go has no
// safe, GC-aware way to alias a float64, a pointer, and 12 bytes of inline
// string storage in the same memory without unsafe tricks that would fight
// the garbage collector, so Value is instead a small tagged struct: one
// type ID, a 64-bit payload word plus two aux fields, an embedded
// vstring.VString (itself already zero-allocation for short strings), a
// CharPtr view, a status description, and a pointer to heap extra data. The state space and invariants are the same; the
// physical layout is not byte-for-byte identical, and that's the
// deliberate trade taken here.
package value
