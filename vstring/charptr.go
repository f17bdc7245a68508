package vstring

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/uwvalue/hashstream"
	"github.com/joshuapare/uwvalue/registry"
)

// Encoding identifies how a CharPtr's backing bytes are laid out.
type Encoding uint8

const (
	// Narrow treats every byte as one Latin-1 (ISO-8859-1) code point.
	Narrow Encoding = iota
	// UTF8 decodes standard variable-width UTF-8.
	UTF8
	// UTF32 decodes fixed-width, little-endian 4-byte code points.
	UTF32
	// UTF16 decodes little-endian UTF-16, including surrogate pairs.
	UTF16
)

// narrowDecode turns a Narrow CharPtr's bytes into code points, byte-for-byte
// equivalent to treating each byte as its own code point (ISO-8859-1 maps
// 1:1 onto U+0000-U+00FF) but going through the same decoder infrastructure
// the UTF16 case below uses, rather than hand-rolling the identity mapping.
func narrowDecode(data []byte) ([]rune, error) {
	out, _, err := transform.Bytes(charmap.ISO8859_1.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("vstring: narrow decode: %w", err)
	}
	return []rune(string(out)), nil
}

// utf16Decode decodes little-endian UTF-16 bytes (with surrogate pairs) to
// code points via the same transform.Transformer pipeline narrowDecode uses.
func utf16Decode(data []byte) ([]rune, error) {
	dec := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("vstring: UTF-16 decode: %w", err)
	}
	return []rune(string(out)), nil
}

// CharPtr is a non-owning view over an external C-string buffer. It never
// copies Data; callers are responsible for keeping the backing buffer alive
// for as long as the CharPtr is used.
type CharPtr struct {
	Data     []byte
	Encoding Encoding
}

// Runes decodes the full contents to a rune slice.
func (c CharPtr) Runes() ([]rune, error) {
	switch c.Encoding {
	case Narrow:
		return narrowDecode(c.Data)
	case UTF8:
		return []rune(string(c.Data)), nil
	case UTF32:
		if len(c.Data)%4 != 0 {
			return nil, fmt.Errorf("vstring: UTF-32 buffer length %d not a multiple of 4", len(c.Data))
		}
		out := make([]rune, len(c.Data)/4)
		for i := range out {
			out[i] = rune(binary.LittleEndian.Uint32(c.Data[i*4:]))
		}
		return out, nil
	case UTF16:
		return utf16Decode(c.Data)
	default:
		return nil, fmt.Errorf("vstring: unknown CharPtr encoding %d", c.Encoding)
	}
}

// Len returns the length in code points, decoding UTF-8/UTF-16/UTF-32 as
// needed.
func (c CharPtr) Len() int {
	switch c.Encoding {
	case Narrow:
		return len(c.Data)
	case UTF8:
		return utf8.RuneCount(c.Data)
	case UTF32:
		return len(c.Data) / 4
	case UTF16:
		rs, err := utf16Decode(c.Data)
		if err != nil {
			return 0
		}
		return len(rs)
	default:
		return 0
	}
}

// ToVString copies c's contents into a new owned VString.
func (c CharPtr) ToVString() (*VString, error) {
	rs, err := c.Runes()
	if err != nil {
		return nil, err
	}
	v := New()
	if err := v.AppendRunes(rs); err != nil {
		return nil, err
	}
	return v, nil
}

// Equal compares c's decoded code points against v's, the same way two
// owned strings of different widths compare: by code point, not by byte
// layout.
func (c CharPtr) Equal(v *VString) bool {
	if v == nil {
		return false
	}
	rs, err := c.Runes()
	if err != nil {
		return false
	}
	if len(rs) != v.Len() {
		return false
	}
	data := v.storage()
	for i, r := range rs {
		if v.at(data, i) != r {
			return false
		}
	}
	return true
}

// Hash folds c's code points the same way VString.Hash does, so a CharPtr
// and an equal owned string always produce the same digest.
func (c CharPtr) Hash(ctx *hashstream.Context) {
	hashstream.FeedU64(ctx, uint64(registry.String))
	rs, err := c.Runes()
	if err != nil {
		return
	}
	for _, r := range rs {
		hashstream.FeedU64(ctx, uint64(uint32(r)))
	}
}
