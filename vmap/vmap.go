package vmap

import (
	"fmt"

	"github.com/joshuapare/uwvalue/compound"
)

// Compoundish is the contract vmap needs from its element type: enough to
// register a parent/child ownership edge when a compound key or value is
// stored.
type Compoundish interface {
	CompoundData() *compound.Data
}

// initialCapacity mirrors the reference implementation's starting hash
// table size; it must stay a power of two, since growth doubles it and
// probing masks the hash with capacity-1.
const initialCapacity = 8

// hashTable is an open-addressing index over kv: ht.items[i] holds the
// 1-based position of a key in kv/2, packed into the narrowest byte width
// that can address the table's capacity (1 byte up to 255 slots, 2 up to
// 65535, 4 up to 2^32-1, else 8), the same space trade the reference implementation
// makes instead of unconditionally paying for 8-byte slots.
type hashTable struct {
	itemSize uint8
	bitmask  uint64
	used     int
	capacity int
	items    []byte
}

func itemSizeForCapacity(capacity int) uint8 {
	switch {
	case capacity <= 0xFF:
		return 1
	case capacity <= 0xFFFF:
		return 2
	case uint64(capacity) <= 0xFFFFFFFF:
		return 4
	default:
		return 8
	}
}

func newHashTable(capacity int) *hashTable {
	size := itemSizeForCapacity(capacity)
	return &hashTable{
		itemSize: size,
		bitmask:  uint64(capacity - 1),
		capacity: capacity,
		items:    make([]byte, int(size)*capacity),
	}
}

func (ht *hashTable) get(i int) uint64 {
	off := i * int(ht.itemSize)
	var result uint64
	for b := 0; b < int(ht.itemSize); b++ {
		result = result<<8 | uint64(ht.items[off+b])
	}
	return result
}

func (ht *hashTable) set(i int, value uint64) {
	off := i * int(ht.itemSize)
	for b := int(ht.itemSize) - 1; b >= 0; b-- {
		ht.items[off+b] = byte(value)
		value >>= 8
	}
}

// Map is an insertion-ordered, compound-owning key/value store.
type Map[V Compoundish] struct {
	kv      []V // alternating key, value, in insertion order
	ht      *hashTable
	owner   *compound.Data
	destroy func(*V)
	clone   func(V) V
	hash    func(V) uint64
	equal   func(a, b V) bool
}

// New returns an empty map owned by owner, using destroy/clone/hash/equal
// to manage element lifetime and identity the way package value's
// dispatch does.
func New[V Compoundish](owner *compound.Data, destroy func(*V), clone func(V) V, hash func(V) uint64, equal func(a, b V) bool) *Map[V] {
	return &Map[V]{
		ht:      newHashTable(initialCapacity),
		owner:   owner,
		destroy: destroy,
		clone:   clone,
		hash:    hash,
		equal:   equal,
	}
}

// Len reports the number of key-value pairs.
func (m *Map[V]) Len() int { return len(m.kv) / 2 }

// lookup returns the index of key in kv (always even), or -1 if absent.
// htIndex is the hash table slot at which the search stopped (an empty
// slot on miss, the matching slot on hit); htOffset is the number of
// probes taken to get there, used by Update to decide when to grow.
func (m *Map[V]) lookup(key V) (kvIndex, htIndex, htOffset int) {
	index := int(m.hash(key) & m.ht.bitmask)
	offset := 0
	for {
		slot := m.ht.get(index)
		if slot == 0 {
			return -1, index, offset
		}
		candidate := int(slot-1) * 2
		if m.equal(m.kv[candidate], key) {
			return candidate, index, offset
		}
		index = (index + 1) & int(m.ht.bitmask)
		offset++
	}
}

func (m *Map[V]) setHashTableSlot(startIndex int, kvIndex int) int {
	index := startIndex
	for {
		index &= int(m.ht.bitmask)
		if m.ht.get(index) != 0 {
			index++
			continue
		}
		m.ht.set(index, uint64(kvIndex/2+1))
		return index
	}
}

// grow doubles the hash table's capacity and rebuilds it from kv, the way
// the reference implementation reallocates the whole map struct around a
// bigger embedded table.
func (m *Map[V]) grow() {
	m.ht = newHashTable(m.ht.capacity * 2)
	for i := 0; i < len(m.kv); i += 2 {
		h := int(m.hash(m.kv[i]) & m.ht.bitmask)
		m.setHashTableSlot(h, i)
	}
	m.ht.used = len(m.kv) / 2
}

func (m *Map[V]) adopt(v V) {
	if cd := v.CompoundData(); cd != nil {
		compound.Adopt(m.owner, cd)
	}
}

func (m *Map[V]) abandon(v V) {
	if cd := v.CompoundData(); cd != nil {
		compound.Abandon(m.owner, cd)
	}
}

// Update inserts key/value, or replaces the value if key is already
// present.
func (m *Map[V]) Update(key, value V) error {
	kvIndex, htIndex, htOffset := m.lookup(key)
	if kvIndex >= 0 {
		m.abandon(m.kv[kvIndex+1])
		m.destroy(&m.kv[kvIndex+1])
		m.adopt(value)
		m.kv[kvIndex+1] = value
		return nil
	}

	quarterCap := m.ht.capacity / 4
	if htOffset > quarterCap || (m.ht.capacity-m.ht.used) < quarterCap {
		m.grow()
		htIndex = int(m.hash(key) & m.ht.bitmask)
	}

	newKVIndex := len(m.kv)
	m.setHashTableSlot(htIndex, newKVIndex)
	m.adopt(key)
	m.adopt(value)
	m.kv = append(m.kv, key, value)
	m.ht.used++
	return nil
}

// Lookup returns a clone of the value stored for key, or ok=false if key
// is absent.
func (m *Map[V]) Lookup(key V) (value V, ok bool) {
	kvIndex, _, _ := m.lookup(key)
	if kvIndex < 0 {
		var zero V
		return zero, false
	}
	return m.clone(m.kv[kvIndex+1]), true
}

// HasKey reports whether key is present, without cloning the value.
func (m *Map[V]) HasKey(key V) bool {
	kvIndex, _, _ := m.lookup(key)
	return kvIndex >= 0
}

// Delete removes key and its value, if present, returning whether
// anything was removed.
func (m *Map[V]) Delete(key V) bool {
	kvIndex, htIndex, _ := m.lookup(key)
	if kvIndex < 0 {
		return false
	}

	m.ht.set(htIndex, 0)
	m.ht.used--

	m.abandon(m.kv[kvIndex])
	m.abandon(m.kv[kvIndex+1])
	m.destroy(&m.kv[kvIndex])
	m.destroy(&m.kv[kvIndex+1])

	n := copy(m.kv[kvIndex:], m.kv[kvIndex+2:])
	var zero V
	for i := kvIndex + n; i < len(m.kv); i++ {
		m.kv[i] = zero
	}
	m.kv = m.kv[:kvIndex+n]

	if kvIndex < len(m.kv) {
		// the pair removed wasn't the last one: every hash table entry
		// pointing past it now refers one kv-pair too far.
		threshold := uint64(kvIndex/2 + 2)
		for i := 0; i < m.ht.capacity; i++ {
			slot := m.ht.get(i)
			if slot >= threshold {
				m.ht.set(i, slot-1)
			}
		}
	}
	return true
}

// Item returns clones of the i'th key and value in insertion order.
func (m *Map[V]) Item(i int) (key, value V, ok bool) {
	idx := i * 2
	if idx < 0 || idx >= len(m.kv) {
		var zero V
		return zero, zero, false
	}
	return m.clone(m.kv[idx]), m.clone(m.kv[idx+1]), true
}

// Each calls f with every key/value pair, in insertion order.
func (m *Map[V]) Each(f func(key, value V)) {
	for i := 0; i+1 < len(m.kv); i += 2 {
		f(m.kv[i], m.kv[i+1])
	}
}

// Equal reports whether m and other hold the same key-value pairs in the
// same insertion order, mirroring the reference implementation's
// list-level comparison of the underlying kv pairs.
func (m *Map[V]) Equal(other *Map[V], eq func(a, b V) bool) bool {
	if len(m.kv) != len(other.kv) {
		return false
	}
	for i := range m.kv {
		if !eq(m.kv[i], other.kv[i]) {
			return false
		}
	}
	return true
}

// Finalize destroys every key and value, for use from a Finalize v-table
// slot.
func (m *Map[V]) Finalize() {
	for i := range m.kv {
		m.destroy(&m.kv[i])
	}
	m.kv = nil
}

func (m *Map[V]) String() string {
	return fmt.Sprintf("map(%d pairs)", m.Len())
}
