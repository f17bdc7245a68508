package value

import (
	"fmt"
	"io"

	"github.com/joshuapare/uwvalue/hashstream"
	"github.com/joshuapare/uwvalue/registry"
	"github.com/joshuapare/uwvalue/status"
)

// Create dispatches to typeID's registered constructor.
func Create(typeID registry.TypeID, args ...any) (Value, status.Status) {
	d := Table.Get(typeID)
	if d == nil {
		return Value{}, status.Newf(status.IncompatibleType, "unknown type id %d", typeID)
	}
	if d.VTable.Create == nil {
		return Value{}, status.ErrNotImplemented
	}
	v, err := d.VTable.Create(args...)
	if err != nil {
		if st, ok := err.(status.Status); ok {
			return Value{}, st
		}
		return Value{}, status.Newf(status.OOM, "%v", err)
	}
	return v, status.Ok
}

// Hash dispatches to v's type's hash slot, falling back to a generic hash
// over the type ID and scalar payload when the type declares none.
func Hash(v Value) uint64 {
	d := Table.Get(v.typeID)
	if d != nil && d.VTable.Hash != nil {
		return d.VTable.Hash(v)
	}
	var ctx hashstream.Context
	hashstream.Init(&ctx)
	hashstream.FeedU64(&ctx, uint64(v.typeID))
	hashstream.FeedU64(&ctx, v.num)
	return hashstream.Finish(&ctx)
}

// EqualSameType dispatches to v-table equality when both cells share a
// type; returns false for mismatched types.
func EqualSameType(a, b Value) bool {
	if a.typeID != b.typeID {
		return false
	}
	d := Table.Get(a.typeID)
	if d != nil && d.VTable.EqualSameType != nil {
		return d.VTable.EqualSameType(a, b)
	}
	return a.num == b.num
}

// Equal compares a against b, falling through to a's EqualAnyType v-table
// slot when the two cells have different types (e.g. Signed vs Unsigned,
// or an owned String vs a CharPtr).
func Equal(a, b Value) bool {
	if a.typeID == b.typeID {
		return EqualSameType(a, b)
	}
	d := Table.Get(a.typeID)
	if d != nil && d.VTable.EqualAnyType != nil {
		return d.VTable.EqualAnyType(a, b)
	}
	return false
}

// ToString renders v for display.
func ToString(v Value) string {
	d := Table.Get(v.typeID)
	if d != nil && d.VTable.ToString != nil {
		return d.VTable.ToString(v)
	}
	return fmt.Sprintf("<%s>", typeName(v.typeID))
}

// IsTrue reports v's truthiness.
func IsTrue(v Value) bool {
	d := Table.Get(v.typeID)
	if d != nil && d.VTable.IsTrue != nil {
		return d.VTable.IsTrue(v)
	}
	return v.typeID != registry.Null
}

// Dump writes a debug rendering of v to w.
func Dump(w io.Writer, v Value, indent int) {
	d := Table.Get(v.typeID)
	if d != nil && d.VTable.Dump != nil {
		d.VTable.Dump(w, v, indent)
		return
	}
	fmt.Fprintf(w, "%s%s %s\n", spaces(indent), typeName(v.typeID), ToString(v))
}

func typeName(id registry.TypeID) string {
	d := Table.Get(id)
	if d == nil {
		return "?"
	}
	return d.Name
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
