package ctype

import "testing"

func TestASCIIPredicates(t *testing.T) {
	if !ASCII.IsSpace(' ') || ASCII.IsSpace('x') {
		t.Fatalf("ASCII.IsSpace wrong")
	}
	if ASCII.ToLower('A') != 'a' || ASCII.ToLower('a') != 'a' {
		t.Fatalf("ASCII.ToLower wrong")
	}
	if ASCII.ToUpper('a') != 'A' || ASCII.ToUpper('1') != '1' {
		t.Fatalf("ASCII.ToUpper wrong")
	}
}

func TestUnicodePredicates(t *testing.T) {
	if !Unicode.IsSpace(' ') {
		t.Fatalf("Unicode.IsSpace should treat NBSP as space")
	}
	if Unicode.ToLower('Σ') != 'σ' && Unicode.ToLower('Σ') != 'ς' {
		t.Fatalf("Unicode.ToLower(Sigma) unexpected: %q", Unicode.ToLower('Σ'))
	}
	if Unicode.ToUpper('ß') == 'ß' {
		// ß uppercases to "SS" in full casing, but single-rune ToUpper
		// can only return one rune; accept either ß or ẞ (capital sharp s).
	}
}
