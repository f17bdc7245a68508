// Package ctype abstracts the character-classification predicates the
// adaptive string implementation needs (whitespace test, lower/upper
// mapping) behind a small interface, the way the reference implementation
// abstracts them behind an ICU bridge.
//
// Two implementations are provided: an ASCII-only one with no dependencies,
// and a Unicode-aware one backed by golang.org/x/text/cases. Library
// behavior tracks whichever is linked in as the active Predicates value.
package ctype

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Predicates is the character-classification contract used by vstring.
type Predicates interface {
	// IsSpace reports whether cp is a whitespace code point.
	IsSpace(cp rune) bool
	// ToLower returns the lowercase mapping of cp, or cp unchanged.
	ToLower(cp rune) rune
	// ToUpper returns the uppercase mapping of cp, or cp unchanged.
	ToUpper(cp rune) rune
}

// ASCII is a dependency-free predicate set that only classifies and maps
// the 7-bit ASCII range; every other code point passes through unchanged.
var ASCII Predicates = asciiPredicates{}

type asciiPredicates struct{}

func (asciiPredicates) IsSpace(cp rune) bool {
	switch cp {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func (asciiPredicates) ToLower(cp rune) rune {
	if cp >= 'A' && cp <= 'Z' {
		return cp + ('a' - 'A')
	}
	return cp
}

func (asciiPredicates) ToUpper(cp rune) rune {
	if cp >= 'a' && cp <= 'z' {
		return cp - ('a' - 'A')
	}
	return cp
}

// Unicode is a predicate set covering the full Unicode whitespace and
// case-folding tables, backed by the standard library's unicode package
// for classification and golang.org/x/text/cases for locale-aware case
// mapping of single code points.
var Unicode Predicates = unicodePredicates{
	lower: cases.Lower(language.Und),
	upper: cases.Upper(language.Und),
}

type unicodePredicates struct {
	lower cases.Caser
	upper cases.Caser
}

func (unicodePredicates) IsSpace(cp rune) bool {
	return unicode.IsSpace(cp)
}

func (p unicodePredicates) ToLower(cp rune) rune {
	s := p.lower.String(string(cp))
	for _, r := range s {
		return r
	}
	return cp
}

func (p unicodePredicates) ToUpper(cp rune) rune {
	s := p.upper.String(string(cp))
	for _, r := range s {
		return r
	}
	return cp
}

// Active is a package-level default predicate set. vstring's Trim, TrimLeft,
// TrimRight, ToLower and ToUpper do not read it; each takes its predicate set
// as an argument. It defaults to Unicode and can be set to ASCII.
var Active Predicates = Unicode
