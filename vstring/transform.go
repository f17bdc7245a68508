package vstring

import (
	"golang.org/x/text/unicode/norm"

	"github.com/joshuapare/uwvalue/ctype"
)

// SplitRune splits v on every occurrence of sep.
func (v *VString) SplitRune(sep rune) []*VString {
	return v.splitFunc(func(r rune) bool { return r == sep })
}

// SplitAny splits v on any code point present in seps.
func (v *VString) SplitAny(seps []rune) []*VString {
	set := make(map[rune]struct{}, len(seps))
	for _, r := range seps {
		set[r] = struct{}{}
	}
	return v.splitFunc(func(r rune) bool { _, ok := set[r]; return ok })
}

func (v *VString) splitFunc(isSep func(rune) bool) []*VString {
	rs := v.Runes()
	var out []*VString
	start := 0
	for i, r := range rs {
		if isSep(r) {
			part := New()
			_ = part.AppendRunes(rs[start:i])
			out = append(out, part)
			start = i + 1
		}
	}
	last := New()
	_ = last.AppendRunes(rs[start:])
	out = append(out, last)
	return out
}

// SplitString splits v on every occurrence of the multi-character sep. An
// empty separator returns v unsplit.
func (v *VString) SplitString(sep *VString) []*VString {
	if sep.Len() == 0 {
		return []*VString{v}
	}
	rs := v.Runes()
	sepRs := sep.Runes()
	var out []*VString
	start := 0
	i := 0
	for i+len(sepRs) <= len(rs) {
		if runesEqual(rs[i:i+len(sepRs)], sepRs) {
			part := New()
			_ = part.AppendRunes(rs[start:i])
			out = append(out, part)
			i += len(sepRs)
			start = i
			continue
		}
		i++
	}
	last := New()
	_ = last.AppendRunes(rs[start:])
	out = append(out, last)
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Join concatenates parts, interleaving sep between them. Non-string
// elements don't exist at this layer — callers working with heterogeneous
// value lists (package vlist) filter to strings before calling Join.
func Join(sep *VString, parts []*VString) *VString {
	out := New()
	for i, p := range parts {
		if i > 0 {
			_ = out.Append(sep)
		}
		_ = out.Append(p)
	}
	return out
}

// Trim removes leading and trailing code points classified as space by
// pred.
func (v *VString) Trim(pred ctype.Predicates) *VString {
	rs := v.Runes()
	start, end := trimBounds(rs, pred)
	out := New()
	_ = out.AppendRunes(rs[start:end])
	return out
}

// TrimLeft removes only leading code points classified as space by pred.
func (v *VString) TrimLeft(pred ctype.Predicates) *VString {
	rs := v.Runes()
	start := 0
	for start < len(rs) && pred.IsSpace(rs[start]) {
		start++
	}
	out := New()
	_ = out.AppendRunes(rs[start:])
	return out
}

// TrimRight removes only trailing code points classified as space by pred.
func (v *VString) TrimRight(pred ctype.Predicates) *VString {
	rs := v.Runes()
	end := len(rs)
	for end > 0 && pred.IsSpace(rs[end-1]) {
		end--
	}
	out := New()
	_ = out.AppendRunes(rs[:end])
	return out
}

func trimBounds(rs []rune, pred ctype.Predicates) (start, end int) {
	start, end = 0, len(rs)
	for start < end && pred.IsSpace(rs[start]) {
		start++
	}
	for end > start && pred.IsSpace(rs[end-1]) {
		end--
	}
	return start, end
}

// StartsWith reports whether v begins with the code-point sequence in
// prefix.
func (v *VString) StartsWith(prefix *VString) bool {
	rs, ps := v.Runes(), prefix.Runes()
	if len(ps) > len(rs) {
		return false
	}
	return runesEqual(rs[:len(ps)], ps)
}

// EndsWith reports whether v ends with the code-point sequence in suffix.
func (v *VString) EndsWith(suffix *VString) bool {
	rs, ss := v.Runes(), suffix.Runes()
	if len(ss) > len(rs) {
		return false
	}
	return runesEqual(rs[len(rs)-len(ss):], ss)
}

// Normalize returns a copy of v with its code points normalized to form,
// e.g. norm.NFC or norm.NFD, the way a consumer bridging narrow C-string
// payloads from differently-normalized sources would canonicalize them
// before comparison.
func (v *VString) Normalize(form norm.Form) *VString {
	out := New()
	_ = out.AppendString(form.String(v.String()))
	return out
}

// ToLower returns a copy of v with every code point lowercased by pred.
func (v *VString) ToLower(pred ctype.Predicates) *VString {
	return v.mapRunes(pred.ToLower)
}

// ToUpper returns a copy of v with every code point uppercased by pred.
func (v *VString) ToUpper(pred ctype.Predicates) *VString {
	return v.mapRunes(pred.ToUpper)
}

func (v *VString) mapRunes(f func(rune) rune) *VString {
	rs := v.Runes()
	for i, r := range rs {
		rs[i] = f(r)
	}
	out := New()
	_ = out.AppendRunes(rs)
	return out
}
