package vstring

import (
	"testing"

	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/uwvalue/ctype"
	"github.com/joshuapare/uwvalue/hashstream"
)

func TestAppendStringASCIIStaysWidthOne(t *testing.T) {
	v, err := NewFromString("hello")
	if err != nil {
		t.Fatalf("NewFromString: %v", err)
	}
	if v.CharSize() != 1 {
		t.Fatalf("expected char-size 1 for ASCII, got %d", v.CharSize())
	}
	if v.String() != "hello" {
		t.Fatalf("got %q", v.String())
	}
}

func TestAppendWidensOnHighCodepoint(t *testing.T) {
	v, _ := NewFromString("abc")
	if err := v.AppendString("\U0001F600"); err != nil { // emoji, needs 3 bytes
		t.Fatalf("AppendString: %v", err)
	}
	if v.CharSize() < 3 {
		t.Fatalf("expected width promotion to >=3, got %d", v.CharSize())
	}
	if v.String() != "abc\U0001F600" {
		t.Fatalf("got %q", v.String())
	}
}

func TestWidthPromotionIsOneWay(t *testing.T) {
	v, _ := NewFromString("\U0001F600")
	wide := v.CharSize()
	if err := v.AppendString("a"); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if v.CharSize() != wide {
		t.Fatalf("appending a narrow code point should not shrink char-size")
	}
}

func TestPromotesToHeapPastEmbedded(t *testing.T) {
	v := New()
	long := "this string is definitely longer than twelve bytes"
	if err := v.AppendString(long); err != nil {
		t.Fatalf("AppendString: %v", err)
	}
	if v.String() != long {
		t.Fatalf("got %q", v.String())
	}
}

func TestEraseZeroesTrailingBytesForFastEquality(t *testing.T) {
	a, _ := NewFromString("hello")
	if err := a.Erase(2, 5); err != nil {
		t.Fatalf("Erase: %v", err)
	}
	b, _ := NewFromString("he")
	if !a.Equal(b) {
		t.Fatalf("expected %q to equal %q after erase", a.String(), b.String())
	}
}

func TestEqualAcrossDifferentWidths(t *testing.T) {
	narrow, _ := NewFromString("a")
	wide := New()
	_ = wide.AppendRunes([]rune{'a'})
	_ = wide.AppendString("\U0001F600")
	_ = wide.Truncate(1) // back down to just 'a', but still wide storage

	if !narrow.Equal(wide) {
		t.Fatalf("expected equality across storage widths")
	}
}

func TestHashMatchesAcrossWidths(t *testing.T) {
	narrow, _ := NewFromString("hi")
	wide := New()
	_ = wide.AppendRunes([]rune{'h', 'i', '\U0001F600'})
	_ = wide.Truncate(2)

	if vstringHash(narrow) != vstringHash(wide) {
		t.Fatalf("expected equal-content strings to hash identically regardless of width")
	}
}

func TestCharPtrHashMatchesOwnedString(t *testing.T) {
	owned, _ := NewFromString("hi")
	cp := CharPtr{Data: []byte("hi"), Encoding: UTF8}

	if !cp.Equal(owned) {
		t.Fatalf("expected CharPtr to equal owned string")
	}
	if charPtrHash(cp) != vstringHash(owned) {
		t.Fatalf("expected CharPtr and owned string to hash identically")
	}
}

func TestSubstring(t *testing.T) {
	v, _ := NewFromString("hello world")
	sub, err := v.Substring(6, 11)
	if err != nil {
		t.Fatalf("Substring: %v", err)
	}
	if sub.String() != "world" {
		t.Fatalf("got %q", sub.String())
	}
}

func TestSplitRune(t *testing.T) {
	v, _ := NewFromString("a,b,,c")
	parts := v.SplitRune(',')
	if len(parts) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(parts))
	}
	want := []string{"a", "b", "", "c"}
	for i, p := range parts {
		if p.String() != want[i] {
			t.Fatalf("part %d: got %q want %q", i, p.String(), want[i])
		}
	}
}

func TestSplitString(t *testing.T) {
	v, _ := NewFromString("foo::bar::baz")
	sep, _ := NewFromString("::")
	parts := v.SplitString(sep)
	if len(parts) != 3 || parts[0].String() != "foo" || parts[2].String() != "baz" {
		t.Fatalf("unexpected split result")
	}
}

func TestJoin(t *testing.T) {
	sep, _ := NewFromString(", ")
	a, _ := NewFromString("x")
	b, _ := NewFromString("y")
	got := Join(sep, []*VString{a, b})
	if got.String() != "x, y" {
		t.Fatalf("got %q", got.String())
	}
}

func TestTrimLowerUpper(t *testing.T) {
	v, _ := NewFromString("  Hello  ")
	trimmed := v.Trim(ctype.ASCII)
	if trimmed.String() != "Hello" {
		t.Fatalf("got %q", trimmed.String())
	}
	if trimmed.ToLower(ctype.ASCII).String() != "hello" {
		t.Fatalf("lower failed: %q", trimmed.ToLower(ctype.ASCII).String())
	}
	if trimmed.ToUpper(ctype.ASCII).String() != "HELLO" {
		t.Fatalf("upper failed: %q", trimmed.ToUpper(ctype.ASCII).String())
	}
}

func TestAppendUTF8Partial(t *testing.T) {
	v := New()
	// "é" is 2 bytes in UTF-8 (0xC3 0xA9); feed the first byte alone.
	buf := []byte{0xC3}
	n, err := v.AppendUTF8Partial(buf)
	if err != nil {
		t.Fatalf("AppendUTF8Partial: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 bytes consumed for incomplete sequence, got %d", n)
	}

	buf = append(buf, 0xA9, 'x')
	n, err = v.AppendUTF8Partial(buf)
	if err != nil {
		t.Fatalf("AppendUTF8Partial: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected all 3 bytes consumed, got %d", n)
	}
	if v.String() != "éx" {
		t.Fatalf("got %q", v.String())
	}
}

func TestTrimLeftRight(t *testing.T) {
	v, _ := NewFromString("  Hello  ")
	if got := v.TrimLeft(ctype.ASCII).String(); got != "Hello  " {
		t.Fatalf("TrimLeft: got %q", got)
	}
	if got := v.TrimRight(ctype.ASCII).String(); got != "  Hello" {
		t.Fatalf("TrimRight: got %q", got)
	}
}

func TestStartsEndsWith(t *testing.T) {
	v, _ := NewFromString("hello world")
	prefix, _ := NewFromString("hello")
	suffix, _ := NewFromString("world")
	other, _ := NewFromString("xyz")

	if !v.StartsWith(prefix) {
		t.Fatalf("expected StartsWith(%q) to match", prefix.String())
	}
	if !v.EndsWith(suffix) {
		t.Fatalf("expected EndsWith(%q) to match", suffix.String())
	}
	if v.StartsWith(other) || v.EndsWith(other) {
		t.Fatalf("expected no match against %q", other.String())
	}
}

func TestNormalize(t *testing.T) {
	// "é" as combining sequence (e + U+0301) should normalize under NFC to
	// the single precomposed code point.
	decomposed, _ := NewFromString("é")
	got := decomposed.Normalize(norm.NFC).String()
	if got != "é" {
		t.Fatalf("expected NFC-normalized %q, got %q", "é", got)
	}
}

func TestCharPtrNarrowDecodesAsLatin1(t *testing.T) {
	cp := CharPtr{Data: []byte{0xE9}, Encoding: Narrow} // 0xE9 = é in Latin-1
	rs, err := cp.Runes()
	if err != nil {
		t.Fatalf("Runes: %v", err)
	}
	if len(rs) != 1 || rs[0] != 'é' {
		t.Fatalf("expected [é], got %v", rs)
	}
}

func TestCharPtrUTF16Decode(t *testing.T) {
	// "hi" in little-endian UTF-16.
	cp := CharPtr{Data: []byte{'h', 0, 'i', 0}, Encoding: UTF16}
	rs, err := cp.Runes()
	if err != nil {
		t.Fatalf("Runes: %v", err)
	}
	if string(rs) != "hi" {
		t.Fatalf("got %q", string(rs))
	}
	if cp.Len() != 2 {
		t.Fatalf("expected Len 2, got %d", cp.Len())
	}
}

func vstringHash(v *VString) uint64 {
	var ctx hashstream.Context
	hashstream.Init(&ctx)
	v.Hash(&ctx)
	return hashstream.Finish(&ctx)
}

func charPtrHash(c CharPtr) uint64 {
	var ctx hashstream.Context
	hashstream.Init(&ctx)
	c.Hash(&ctx)
	return hashstream.Finish(&ctx)
}
