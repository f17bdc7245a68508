package value

import (
	"github.com/joshuapare/uwvalue/compound"
	"github.com/joshuapare/uwvalue/registry"
	"github.com/joshuapare/uwvalue/status"
	"github.com/joshuapare/uwvalue/vmap"
)

// newMapValue builds an empty Map cell, wiring its vmap.Map[Value] to
// Destroy/Clone/Hash/Equal so every key/value lookup, insert, and removal
// runs the same dispatch as everywhere else in the runtime.
func newMapValue() Value {
	ed := &extraData{compound: compound.Data{Refcount: 1}}
	ed.m = vmap.New(&ed.compound,
		func(item *Value) { Destroy(item) },
		func(item Value) Value { return Clone(item) },
		Hash,
		Equal,
	)
	return Value{typeID: registry.Map, extra: ed}
}

// NewMap returns a fresh, empty Map cell.
func NewMap() Value { return newMapValue() }

// MapUpdate inserts key/value into m, or replaces the value if key is
// already present.
func MapUpdate(m *Value, key, val Value) status.Status {
	m.mustBeType(registry.Map)
	if err := m.extra.m.Update(key, val); err != nil {
		return status.Newf(status.IncompatibleType, "%v", err)
	}
	return status.Ok
}

// MapLookup returns a clone of the value stored for key.
func MapLookup(m Value, key Value) (Value, status.Status) {
	m.mustBeType(registry.Map)
	val, ok := m.extra.m.Lookup(key)
	if !ok {
		return Value{}, status.ErrKeyNotFound
	}
	return val, status.Ok
}

// MapHasKey reports whether key is present in m.
func MapHasKey(m Value, key Value) bool {
	m.mustBeType(registry.Map)
	return m.extra.m.HasKey(key)
}

// MapDelete removes key and its value from m.
func MapDelete(m *Value, key Value) status.Status {
	m.mustBeType(registry.Map)
	if !m.extra.m.Delete(key) {
		return status.ErrKeyNotFound
	}
	return status.Ok
}

// MapLen reports the number of key-value pairs in m.
func MapLen(m Value) int {
	m.mustBeType(registry.Map)
	return m.extra.m.Len()
}

// MapItem returns clones of the i'th key and value in insertion order.
func MapItem(m Value, i int) (key, val Value, ok bool) {
	m.mustBeType(registry.Map)
	return m.extra.m.Item(i)
}

// MapEach calls f with every key/value pair of m, in insertion order.
func MapEach(m Value, f func(key, val Value)) {
	m.mustBeType(registry.Map)
	m.extra.m.Each(f)
}
