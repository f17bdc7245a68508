package vmap

import (
	"fmt"
	"testing"

	"github.com/joshuapare/uwvalue/compound"
)

type item struct {
	n        int
	compound *compound.Data
}

func (i item) CompoundData() *compound.Data { return i.compound }

func key(n int) item   { return item{n: n} }
func value(n int) item { return item{n: n} }

func compoundItem(n int) item {
	return item{n: n, compound: &compound.Data{Refcount: 1}}
}

func destroyItem(i *item) {
	if i.compound != nil {
		i.compound.Refcount--
	}
}

func cloneItem(i item) item {
	if i.compound != nil {
		i.compound.Refcount++
	}
	return i
}

func hashItem(i item) uint64 { return uint64(i.n) }

func equalItem(a, b item) bool { return a.n == b.n }

func newMap(owner *compound.Data) *Map[item] {
	return New(owner, destroyItem, cloneItem, hashItem, equalItem)
}

func TestUpdateAndLookup(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)

	if err := m.Update(key(1), value(100)); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, ok := m.Lookup(key(1))
	if !ok || got.n != 100 {
		t.Fatalf("expected value 100, got %+v (ok=%v)", got, ok)
	}
	if m.Len() != 1 {
		t.Fatalf("expected length 1, got %d", m.Len())
	}
}

func TestUpdateReplacesExistingKey(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	_ = m.Update(key(1), value(100))
	_ = m.Update(key(1), value(200))

	if m.Len() != 1 {
		t.Fatalf("expected length to stay 1 after re-keying, got %d", m.Len())
	}
	got, _ := m.Lookup(key(1))
	if got.n != 200 {
		t.Fatalf("expected updated value 200, got %d", got.n)
	}
}

func TestLookupMissingKey(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	if _, ok := m.Lookup(key(1)); ok {
		t.Fatalf("expected miss on empty map")
	}
}

func TestDeleteRemovesPairAndShiftsHashTable(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	for i := 0; i < 5; i++ {
		_ = m.Update(key(i), value(i*10))
	}

	if !m.Delete(key(2)) {
		t.Fatalf("expected delete of present key to succeed")
	}
	if m.Len() != 4 {
		t.Fatalf("expected length 4 after delete, got %d", m.Len())
	}
	if m.HasKey(key(2)) {
		t.Fatalf("expected key 2 to be gone")
	}
	for _, k := range []int{0, 1, 3, 4} {
		if !m.HasKey(key(k)) {
			t.Fatalf("expected key %d to still be present after delete", k)
		}
	}
}

func TestDeleteMissingKeyIsNoop(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	_ = m.Update(key(1), value(1))
	if m.Delete(key(99)) {
		t.Fatalf("expected delete of absent key to report false")
	}
	if m.Len() != 1 {
		t.Fatalf("expected length unchanged")
	}
}

func TestGrowsPastInitialCapacity(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	const n = 64
	for i := 0; i < n; i++ {
		if err := m.Update(key(i), value(i)); err != nil {
			t.Fatalf("Update(%d): %v", i, err)
		}
	}
	if m.Len() != n {
		t.Fatalf("expected length %d, got %d", n, m.Len())
	}
	for i := 0; i < n; i++ {
		got, ok := m.Lookup(key(i))
		if !ok || got.n != i {
			t.Fatalf("expected key %d to map to %d, got %+v (ok=%v)", i, i, got, ok)
		}
	}
}

func TestUpdateAdoptsCompoundKeyAndValue(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	k := compoundItem(1)
	v := compoundItem(2)

	_ = m.Update(k, v)
	if !compound.IsEmbraced(k.compound) {
		t.Fatalf("expected key to be embraced by the map")
	}
	if !compound.IsEmbraced(v.compound) {
		t.Fatalf("expected value to be embraced by the map")
	}
}

func TestDeleteAbandonsCompoundKeyAndValue(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	k := compoundItem(1)
	v := compoundItem(2)
	_ = m.Update(k, v)

	m.Delete(k)
	if compound.IsEmbraced(k.compound) {
		t.Fatalf("expected key to be abandoned after delete")
	}
	if compound.IsEmbraced(v.compound) {
		t.Fatalf("expected value to be abandoned after delete")
	}
}

func TestItemIteratesInsertionOrder(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	_ = m.Update(key(1), value(10))
	_ = m.Update(key(2), value(20))

	k, v, ok := m.Item(0)
	if !ok || k.n != 1 || v.n != 10 {
		t.Fatalf("expected first pair (1,10), got (%d,%d) ok=%v", k.n, v.n, ok)
	}
	_, _, ok = m.Item(2)
	if ok {
		t.Fatalf("expected out-of-range Item to report ok=false")
	}
}

func TestEqual(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	a := newMap(owner)
	b := newMap(owner)
	_ = a.Update(key(1), value(10))
	_ = b.Update(key(1), value(10))

	if !a.Equal(b, equalItem) {
		t.Fatalf("expected equal maps")
	}
	_ = b.Update(key(2), value(20))
	if a.Equal(b, equalItem) {
		t.Fatalf("expected unequal maps after divergence")
	}
}

func TestFinalizeDestroysEveryPair(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	k := compoundItem(1)
	_ = m.Update(k, value(1))
	m.Finalize()
	if m.Len() != 0 {
		t.Fatalf("expected length 0 after finalize")
	}
}

func TestStringer(t *testing.T) {
	owner := &compound.Data{Refcount: 1}
	m := newMap(owner)
	_ = m.Update(key(1), value(1))
	if got := fmt.Sprint(m); got != "map(1 pairs)" {
		t.Fatalf("unexpected String(): %q", got)
	}
}
