package registry

import (
	"fmt"
	"io"
	"sync"
)

// TypeID identifies a registered type. The table has room for 256 slots,
// matching the reference implementation's 8-bit type tag.
type TypeID uint8

// MaxTypes is the fixed capacity of a Table.
const MaxTypes = 256

// Built-in type IDs, fixed at the same slots every process gets them in.
const (
	Null TypeID = iota
	Bool
	Int
	Signed
	Unsigned
	Float
	String
	CharPtr
	List
	Map
	Status
	UserCompound
	File
	StringIO

	numBuiltinTypes
)

// VTable holds the dispatchable core operations for one type descriptor.
// A nil slot means "not supported" — dispatch must treat that as
// NOT_IMPLEMENTED / NO_INTERFACE, never as a crash.
//
// It is generic over the concrete cell type C purely to avoid an import
// cycle between this package and package value; every VTable actually in
// use in this module is a VTable[value.Value].
type VTable[C any] struct {
	Create        func(args ...any) (C, error)
	Destroy       func(c *C)
	Init          func(c *C, args ...any) error
	Finalize      func(c *C)
	Clone         func(c C) C
	Hash          func(c C) uint64
	DeepCopy      func(c C) C
	Dump          func(w io.Writer, c C, indent int)
	ToString      func(c C) string
	IsTrue        func(c C) bool
	EqualSameType func(a, b C) bool
	EqualAnyType  func(a C, b any) bool
}

// Descriptor is one type's full registration record.
type Descriptor[C any] struct {
	ID       TypeID
	Name     string
	Ancestor TypeID
	HasAncestor bool

	Compound     bool
	DataOptional bool
	DataOffset   int
	DataSize     int

	VTable VTable[C]

	// Interfaces is indexed by InterfaceID; a nil entry means the type
	// does not implement that interface.
	Interfaces []any
}

// Table is the fixed-capacity, process-wide type-descriptor table.
type Table[C any] struct {
	mu    sync.RWMutex
	slots [MaxTypes]*Descriptor[C]
	next  TypeID
	full  bool
}

// NewTable returns an empty table. Built-in types are not pre-populated:
// the owning package (value) registers them at init time via RegisterAt,
// exactly the way the reference implementation's process-start
// registration works, just without relying on load-order constructors.
func NewTable[C any]() *Table[C] {
	return &Table[C]{next: 0}
}

// RegisterAt places d at the fixed slot id, for built-in types that must
// live at stable IDs across processes. It is an error to reuse an
// occupied slot.
func (t *Table[C]) RegisterAt(id TypeID, d *Descriptor[C]) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.slots[id] != nil {
		return fmt.Errorf("registry: type slot %d already occupied by %q", id, t.slots[id].Name)
	}
	d.ID = id
	t.slots[id] = d
	if id >= t.next {
		t.next = id + 1
	}
	return nil
}

// Register allocates the first free slot at or after the built-in range
// and assigns d to it. Returns an error if the table is full.
func (t *Table[C]) Register(d *Descriptor[C]) (TypeID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := TypeID(numBuiltinTypes); ; i++ {
		if int(i) >= MaxTypes {
			return 0, fmt.Errorf("registry: type table full (capacity %d)", MaxTypes)
		}
		if t.slots[i] == nil {
			d.ID = i
			t.slots[i] = d
			t.next = i + 1
			return i, nil
		}
		if i == MaxTypes-1 {
			return 0, fmt.Errorf("registry: type table full (capacity %d)", MaxTypes)
		}
	}
}

// Get returns the descriptor for id, or nil if the slot is unused.
func (t *Table[C]) Get(id TypeID) *Descriptor[C] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.slots[id]
}

// Subclass derives a new type descriptor from ancestor: the v-table is
// copied memberwise (so every slot starts out identical to the
// ancestor's), DataOffset is set to the ancestor's offset plus its own
// data size, and DataSize is set to extra. The caller then overrides
// whichever v-table slots the subclass actually changes before
// registering it with Register.
func (t *Table[C]) Subclass(ancestor TypeID, name string, extraDataSize int) (*Descriptor[C], error) {
	anc := t.Get(ancestor)
	if anc == nil {
		return nil, fmt.Errorf("registry: unknown ancestor type %d", ancestor)
	}
	d := &Descriptor[C]{
		Name:         name,
		Ancestor:     ancestor,
		HasAncestor:  true,
		Compound:     anc.Compound,
		DataOptional: anc.DataOptional,
		DataOffset:   anc.DataOffset + anc.DataSize,
		DataSize:     extraDataSize,
		VTable:       anc.VTable, // memberwise copy; caller overrides selected slots
		Interfaces:   append([]any(nil), anc.Interfaces...),
	}
	return d, nil
}

// IsSubclassOf walks the ancestor chain from id looking for target.
func (t *Table[C]) IsSubclassOf(id, target TypeID) bool {
	for {
		if id == target {
			return true
		}
		d := t.Get(id)
		if d == nil || !d.HasAncestor {
			return false
		}
		id = d.Ancestor
	}
}

// Super returns id's direct ancestor descriptor. "Super" calls resolve one
// hop, not the full chain — callers that want to reach further up choose
// to call Super repeatedly themselves.
func (t *Table[C]) Super(id TypeID) (*Descriptor[C], bool) {
	d := t.Get(id)
	if d == nil || !d.HasAncestor {
		return nil, false
	}
	anc := t.Get(d.Ancestor)
	return anc, anc != nil
}
