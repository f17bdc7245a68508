package registry

import "testing"

type dummyCell struct {
	n int
}

func TestRegisterAtAndGet(t *testing.T) {
	tbl := NewTable[dummyCell]()
	d := &Descriptor[dummyCell]{Name: "Null"}
	if err := tbl.RegisterAt(Null, d); err != nil {
		t.Fatalf("RegisterAt failed: %v", err)
	}
	got := tbl.Get(Null)
	if got == nil || got.Name != "Null" {
		t.Fatalf("Get returned wrong descriptor: %+v", got)
	}
}

func TestRegisterAtConflict(t *testing.T) {
	tbl := NewTable[dummyCell]()
	_ = tbl.RegisterAt(Null, &Descriptor[dummyCell]{Name: "Null"})
	if err := tbl.RegisterAt(Null, &Descriptor[dummyCell]{Name: "Other"}); err == nil {
		t.Fatalf("expected conflict error registering over occupied slot")
	}
}

func TestRegisterFirstFreeSlot(t *testing.T) {
	tbl := NewTable[dummyCell]()
	_ = tbl.RegisterAt(Null, &Descriptor[dummyCell]{Name: "Null"})
	_ = tbl.RegisterAt(Bool, &Descriptor[dummyCell]{Name: "Bool"})

	id, err := tbl.Register(&Descriptor[dummyCell]{Name: "Custom"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if id == Null || id == Bool {
		t.Fatalf("Register reused an occupied slot: %d", id)
	}
}

func TestSubclassInheritsVTableAndOffset(t *testing.T) {
	tbl := NewTable[dummyCell]()
	ancestorVTable := VTable[dummyCell]{
		ToString: func(c dummyCell) string { return "ancestor" },
	}
	_ = tbl.RegisterAt(UserCompound, &Descriptor[dummyCell]{
		Name:       "Base",
		DataOffset: 8,
		DataSize:   16,
		VTable:     ancestorVTable,
	})

	sub, err := tbl.Subclass(UserCompound, "Derived", 4)
	if err != nil {
		t.Fatalf("Subclass failed: %v", err)
	}
	if sub.DataOffset != 24 {
		t.Fatalf("expected DataOffset 8+16=24, got %d", sub.DataOffset)
	}
	if sub.DataSize != 4 {
		t.Fatalf("expected DataSize 4, got %d", sub.DataSize)
	}
	if sub.VTable.ToString(dummyCell{}) != "ancestor" {
		t.Fatalf("subclass did not inherit ancestor v-table")
	}

	id, err := tbl.Register(sub)
	if err != nil {
		t.Fatalf("Register(sub) failed: %v", err)
	}
	if !tbl.IsSubclassOf(id, UserCompound) {
		t.Fatalf("expected IsSubclassOf(Derived, Base) == true")
	}
	if tbl.IsSubclassOf(UserCompound, id) {
		t.Fatalf("ancestor should not be considered a subclass of its descendant")
	}
}

func TestSuperResolvesOneHop(t *testing.T) {
	tbl := NewTable[dummyCell]()
	_ = tbl.RegisterAt(UserCompound, &Descriptor[dummyCell]{Name: "Base"})
	sub, _ := tbl.Subclass(UserCompound, "Derived", 0)
	id, _ := tbl.Register(sub)

	anc, ok := tbl.Super(id)
	if !ok || anc.Name != "Base" {
		t.Fatalf("Super did not resolve to Base: %+v, %v", anc, ok)
	}
}

func TestRegisterInterfaceAndLookup(t *testing.T) {
	id, err := RegisterInterface("uwvalue_test_iface")
	if err != nil {
		t.Fatalf("RegisterInterface failed: %v", err)
	}
	if InterfaceName(id) != "uwvalue_test_iface" {
		t.Fatalf("unexpected interface name: %q", InterfaceName(id))
	}

	d := &Descriptor[dummyCell]{}
	SetInterface(d, id, 42)
	got, ok := Interface(d, id)
	if !ok || got.(int) != 42 {
		t.Fatalf("Interface lookup failed: %v, %v", got, ok)
	}
}

func TestBuiltinInterfaceNames(t *testing.T) {
	if InterfaceName(Logic) != "Logic" {
		t.Fatalf("expected Logic, got %q", InterfaceName(Logic))
	}
	if InterfaceName(LineReader) != "LineReader" {
		t.Fatalf("expected LineReader, got %q", InterfaceName(LineReader))
	}
}
