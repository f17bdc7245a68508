package vstring

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/uwvalue/hashstream"
	"github.com/joshuapare/uwvalue/registry"
)

// embeddedBytes is the inline storage a VString carries before it needs to
// promote to a heap-allocated buffer.
const embeddedBytes = 12

// VString is the adaptive-width string cell. The zero value is a valid
// empty string.
type VString struct {
	charSize uint8 // bytes per code unit: 1, 2, 3, or 4
	length   int   // code units, not bytes
	emb      [embeddedBytes]byte
	heap     []byte // nil while storage fits in emb
}

// New returns an empty VString.
func New() *VString {
	return &VString{charSize: 1}
}

// NewFromString returns a VString containing the decoded contents of s.
func NewFromString(s string) (*VString, error) {
	v := New()
	if err := v.AppendString(s); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the length in code points.
func (v *VString) Len() int { return v.length }

// CharSize returns the current per-code-point storage width in bytes.
func (v *VString) CharSize() int { return int(v.charSize) }

func (v *VString) capacity() int {
	if v.heap != nil {
		return len(v.heap) / int(v.charSize)
	}
	return embeddedBytes / int(v.charSize)
}

func (v *VString) storage() []byte {
	if v.heap != nil {
		return v.heap
	}
	return v.emb[:]
}

// widthForCodepoint returns the minimum char-size that can hold r.
func widthForCodepoint(r rune) uint8 {
	switch {
	case r <= 0xFF:
		return 1
	case r <= 0xFFFF:
		return 2
	case r <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}

func (v *VString) at(data []byte, i int) rune {
	off := i * int(v.charSize)
	var r uint32
	for b := int(v.charSize) - 1; b >= 0; b-- {
		r = r<<8 | uint32(data[off+b])
	}
	return rune(r)
}

func (v *VString) setAt(data []byte, i int, r rune) {
	off := i * int(v.charSize)
	u := uint32(r)
	for b := 0; b < int(v.charSize); b++ {
		data[off+b] = byte(u)
		u >>= 8
	}
}

// Runes decodes the full contents to a rune slice.
func (v *VString) Runes() []rune {
	data := v.storage()
	out := make([]rune, v.length)
	for i := range out {
		out[i] = v.at(data, i)
	}
	return out
}

// String renders the contents as a Go UTF-8 string.
func (v *VString) String() string {
	return string(v.Runes())
}

// growTo ensures v can hold newLen code points at a char-size of at least
// width, widening storage and re-encoding existing content as needed.
// Width promotion is one-way: it never narrows an existing wider string.
func (v *VString) growTo(newLen int, width uint8) {
	if v.charSize == 0 {
		v.charSize = 1 // zero-value VString
	}
	if width < v.charSize {
		width = v.charSize
	}
	// A VString is held by value inside Value, so a plain Go struct copy
	// (assignment, return, Clone's shallow copy) aliases v.heap — the
	// embedded array is copied automatically by Go's value semantics, but
	// a slice header copy shares the backing array. Rather than track a
	// separate refcount to know whether it's safe to mutate v.heap in
	// place, every mutation that touches heap-backed storage detaches by
	// rebuilding it fresh, the "always reallocate" string-mutation
	// simplification.
	if v.heap == nil && newLen <= v.capacity() && width == v.charSize {
		return
	}
	existing := v.Runes()
	neededBytes := newLen * int(width)
	if neededBytes <= embeddedBytes {
		v.heap = nil
	} else {
		v.heap = make([]byte, neededBytes)
	}
	v.charSize = width
	data := v.storage()
	for i, r := range existing {
		v.setAt(data, i, r)
	}
}

// AppendString decodes str as UTF-8 and appends its code points.
func (v *VString) AppendString(str string) error {
	if str == "" {
		return nil
	}
	var maxCP rune
	count := 0
	for _, r := range str {
		if r > maxCP {
			maxCP = r
		}
		count++
	}
	width := widthForCodepoint(maxCP)
	newLen := v.length + count
	v.growTo(newLen, width)
	data := v.storage()
	i := v.length
	for _, r := range str {
		v.setAt(data, i, r)
		i++
	}
	v.length = newLen
	return nil
}

// AppendRunes appends a decoded code-point slice directly, useful for
// callers that already hold UTF-32 data.
func (v *VString) AppendRunes(rs []rune) error {
	if len(rs) == 0 {
		return nil
	}
	var maxCP rune
	for _, r := range rs {
		if r > maxCP {
			maxCP = r
		}
	}
	width := widthForCodepoint(maxCP)
	newLen := v.length + len(rs)
	v.growTo(newLen, width)
	data := v.storage()
	i := v.length
	for _, r := range rs {
		v.setAt(data, i, r)
		i++
	}
	v.length = newLen
	return nil
}

// AppendUTF8Partial decodes as many complete UTF-8 sequences from buf as
// are present, appends them, and returns how many bytes were consumed.
// Any incomplete trailing sequence is left unconsumed for the caller to
// re-present once more bytes arrive.
func (v *VString) AppendUTF8Partial(buf []byte) (bytesProcessed int, err error) {
	var runes []rune
	i := 0
	for i < len(buf) {
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(buf[i:]) {
				break // incomplete trailing sequence
			}
			return i, fmt.Errorf("vstring: invalid UTF-8 byte at offset %d", i)
		}
		runes = append(runes, r)
		i += size
	}
	if err := v.AppendRunes(runes); err != nil {
		return i, err
	}
	return i, nil
}

// Append appends another VString's contents, preserving its width if wider.
func (v *VString) Append(other *VString) error {
	return v.AppendRunes(other.Runes())
}

func (v *VString) checkRange(start, end int) error {
	if start < 0 || end < start || end > v.length {
		return fmt.Errorf("vstring: invalid range [%d,%d) for length %d", start, end, v.length)
	}
	return nil
}

// Erase removes code points in [start,end) and shifts the tail down,
// zeroing the freed trailing bytes so the fast-path equality check below
// can rely on unused storage always being zero.
func (v *VString) Erase(start, end int) error {
	if err := v.checkRange(start, end); err != nil {
		return err
	}
	if start == end {
		return nil
	}
	if v.heap != nil {
		v.heap = append([]byte(nil), v.heap...)
	}
	data := v.storage()
	n := end - start
	tail := v.length - end
	for i := 0; i < tail; i++ {
		v.setAt(data, start+i, v.at(data, end+i))
	}
	for i := v.length - n; i < v.length; i++ {
		v.setAt(data, i, 0)
	}
	v.length -= n
	return nil
}

// Truncate discards code points from n to the end.
func (v *VString) Truncate(n int) error {
	return v.Erase(n, v.length)
}

// Substring returns a new VString holding a copy of [start,end), sized to
// the exact width that range actually needs.
func (v *VString) Substring(start, end int) (*VString, error) {
	if err := v.checkRange(start, end); err != nil {
		return nil, err
	}
	data := v.storage()
	out := New()
	rs := make([]rune, end-start)
	for i := range rs {
		rs[i] = v.at(data, start+i)
	}
	if err := out.AppendRunes(rs); err != nil {
		return nil, err
	}
	return out, nil
}

// eqFast compares the raw storage bytes of the first length code points.
// It only applies when both operands use the same char-size; callers fall
// through to Equal's code-point comparison otherwise.
func (v *VString) eqFast(other *VString) (equal, applicable bool) {
	if v.charSize != other.charSize {
		return false, false
	}
	if v.length != other.length {
		return false, true
	}
	ad, bd := v.storage(), other.storage()
	n := v.length * int(v.charSize)
	if n > len(ad) || n > len(bd) {
		return false, false
	}
	for i := 0; i < n; i++ {
		if ad[i] != bd[i] {
			return false, true
		}
	}
	return true, true
}

// Equal reports whether v and other contain the same sequence of code
// points, regardless of storage width.
func (v *VString) Equal(other *VString) bool {
	if other == nil {
		return false
	}
	if eq, ok := v.eqFast(other); ok {
		return eq
	}
	if v.length != other.length {
		return false
	}
	ad, bd := v.storage(), other.storage()
	for i := 0; i < v.length; i++ {
		if v.at(ad, i) != other.at(bd, i) {
			return false
		}
	}
	return true
}

// Hash folds v's code points into ctx as 32-bit words, tagged with the
// registry's String type ID so that an equal CharPtr or owned string
// always produces the same digest regardless of storage width.
func (v *VString) Hash(ctx *hashstream.Context) {
	hashstream.FeedU64(ctx, uint64(registry.String))
	data := v.storage()
	for i := 0; i < v.length; i++ {
		hashstream.FeedU64(ctx, uint64(uint32(v.at(data, i))))
	}
}

// At returns the code point at index i.
func (v *VString) At(i int) (rune, error) {
	if i < 0 || i >= v.length {
		return 0, fmt.Errorf("vstring: index %d out of range [0,%d)", i, v.length)
	}
	return v.at(v.storage(), i), nil
}
