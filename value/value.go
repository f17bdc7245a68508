package value

import (
	"math"
	"syscall"

	"github.com/joshuapare/uwvalue/compound"
	"github.com/joshuapare/uwvalue/registry"
	"github.com/joshuapare/uwvalue/status"
	"github.com/joshuapare/uwvalue/vlist"
	"github.com/joshuapare/uwvalue/vmap"
	"github.com/joshuapare/uwvalue/vstring"
)

// extraData is the heap-resident payload behind any non-trivial Value.
// Compound is always present on it (its Refcount field is the cell's
// reference count, even for non-compound payloads like a File or StringIO
// handle); List/Map/User hold the type-specific contents. Only one of
// List/Map/User is ever populated, selected by the cell's type ID.
type extraData struct {
	compound compound.Data
	list     *vlist.List[Value]
	m        *vmap.Map[Value]
	user     any
}

// Value is the runtime's tagged dynamic value cell. The zero Value is a
// valid Null.
type Value struct {
	typeID registry.TypeID
	aux8   uint8
	aux16  uint16
	num    uint64
	str    vstring.VString
	charp  vstring.CharPtr
	desc   string // optional status description; "" means none set
	extra  *extraData
}

// Table is the process-wide type registry instantiated over Value, giving
// every built-in and user type its v-table and ancestor chain.
var Table = registry.NewTable[Value]()

// TypeID reports the cell's dynamic type.
func (v Value) TypeID() registry.TypeID { return v.typeID }

// IsCompound reports whether v's type is registered as compound.
func (v Value) IsCompound() bool {
	d := Table.Get(v.typeID)
	return d != nil && d.Compound
}

// IsSubclassOf reports whether v's type descends from ancestor.
func (v Value) IsSubclassOf(ancestor registry.TypeID) bool {
	return Table.IsSubclassOf(v.typeID, ancestor)
}

// CompoundData implements vlist/vmap's Compoundish contract: it returns the
// parent-tracking record shared by every cell pointing at the same extra
// data, or nil if v isn't a heap-backed compound.
func (v Value) CompoundData() *compound.Data {
	if v.extra == nil {
		return nil
	}
	return &v.extra.compound
}

// IsStatus implements vlist's Compoundish contract: lists refuse to accept
// status values as elements.
func (v Value) IsStatus() bool { return v.typeID == registry.Status }

// Null returns the null value.
func Null() Value { return Value{typeID: registry.Null} }

// NewBool returns a boolean cell.
func NewBool(b bool) Value {
	var n uint64
	if b {
		n = 1
	}
	return Value{typeID: registry.Bool, num: n}
}

// NewInt returns a signed-integer cell.
func NewInt(n int64) Value {
	return Value{typeID: registry.Signed, num: uint64(n)}
}

// NewLegacyInt returns a cell in the registry's combined Int slot (registry
// slot 2, the layout spec.md's built-in type table names). It behaves
// exactly like a Signed cell — participating in the same cross-type numeric
// hash/equality family — and exists only so that reserved slot is a fully
// working type rather than a dead registration; new code should use NewInt.
func NewLegacyInt(n int64) Value {
	return Value{typeID: registry.Int, num: uint64(n)}
}

// NewUint returns an unsigned-integer cell.
func NewUint(n uint64) Value {
	return Value{typeID: registry.Unsigned, num: n}
}

// NewFloat returns a float64 cell.
func NewFloat(f float64) Value {
	return Value{typeID: registry.Float, num: math.Float64bits(f)}
}

// NewString returns a String cell decoding the given UTF-8 Go string.
func NewString(s string) (Value, status.Status) {
	vs, err := vstring.NewFromString(s)
	if err != nil {
		return Value{}, status.Newf(status.OOM, "%v", err)
	}
	return Value{typeID: registry.String, str: *vs}, status.Ok
}

// NewCharPtr returns a non-owning CharPtr cell over an external buffer.
func NewCharPtr(c vstring.CharPtr) Value {
	return Value{typeID: registry.CharPtr, charp: c, aux8: uint8(c.Encoding)}
}

// NewStatus returns a Status cell.
func NewStatus(s status.Status) Value {
	v := Value{typeID: registry.Status}
	v.aux8 = uint8(s.Class())
	if s.Class() == status.ClassErrno {
		v.aux16 = uint16(s.Errno())
	} else {
		v.aux16 = uint16(s.Code())
	}
	v.desc = s.Description()
	return v
}

// AsBool returns the boolean payload; callers must only call this on a
// Bool cell — like the reference implementation, a type mismatch here is a
// programmer error, not a recoverable condition.
func (v Value) AsBool() bool {
	v.mustBeType(registry.Bool)
	return v.num != 0
}

// AsInt returns the signed-integer payload.
func (v Value) AsInt() int64 {
	v.mustBeType(registry.Signed)
	return int64(v.num)
}

// AsLegacyInt returns the payload of a legacy combined Int cell.
func (v Value) AsLegacyInt() int64 {
	v.mustBeType(registry.Int)
	return int64(v.num)
}

// AsUint returns the unsigned-integer payload.
func (v Value) AsUint() uint64 {
	v.mustBeType(registry.Unsigned)
	return v.num
}

// AsFloat returns the float64 payload.
func (v Value) AsFloat() float64 {
	v.mustBeType(registry.Float)
	return math.Float64frombits(v.num)
}

// AsString returns a pointer to the adaptive string payload for in-place
// mutation (Append, Erase, Truncate); the receiver must be addressable so
// the returned pointer reaches the caller's own cell rather than a copy.
func (v *Value) AsString() *vstring.VString {
	v.mustBeType(registry.String)
	return &v.str
}

// AsCharPtr returns the non-owning C-string view.
func (v Value) AsCharPtr() vstring.CharPtr {
	v.mustBeType(registry.CharPtr)
	return v.charp
}

// AsStatus reconstructs a status.Status from a Status cell.
func (v Value) AsStatus() status.Status {
	v.mustBeType(registry.Status)
	if status.Class(v.aux8) == status.ClassErrno {
		return status.FromErrno(syscall.Errno(v.aux16))
	}
	if v.desc != "" {
		return status.Newf(status.Code(v.aux16), "%s", v.desc)
	}
	return status.New(status.Code(v.aux16))
}

func (v Value) mustBeType(want registry.TypeID) {
	if v.typeID != want {
		panic(&typeMismatchError{want: want, got: v.typeID})
	}
}

type typeMismatchError struct {
	want, got registry.TypeID
}

func (e *typeMismatchError) Error() string {
	d := Table.Get(e.want)
	g := Table.Get(e.got)
	wantName, gotName := "?", "?"
	if d != nil {
		wantName = d.Name
	}
	if g != nil {
		gotName = g.Name
	}
	return "value: type assertion failed: expected " + wantName + ", got " + gotName
}
