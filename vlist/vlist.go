package vlist

import (
	"fmt"

	"github.com/joshuapare/uwvalue/compound"
)

// Compoundish is the contract vlist needs from its element type: enough to
// register a parent/child ownership edge when a compound item is appended,
// and to refuse status values (a list is not an error channel).
type Compoundish interface {
	CompoundData() *compound.Data
	IsStatus() bool
}

// initialQuantum and growQuantum mirror the reference implementation's
// capacity rounding: 4 items to start, 16-item quanta after that.
const (
	initialQuantum = 4
	growQuantum    = 16
)

// List is an ordered, compound-owning sequence of items of type V.
type List[V Compoundish] struct {
	items []V
	// owner is the compound.Data of the value that embeds this List (the
	// List value itself), passed to compound.Adopt when a compound item
	// is appended and to compound.Abandon when one is removed.
	owner *compound.Data
	// destroy tears down an item fully (recursively, via its own type's
	// finalize); clone produces an independent reference to an item for
	// Item/Slice reads. Both are supplied by package value, which is the
	// only place that knows how to dispatch by type ID.
	destroy func(*V)
	clone   func(V) V
}

// New returns an empty list owned by owner (the compound.Data embedded in
// the value that holds this List), using destroy/clone to manage element
// lifetimes the way package value's dispatch does.
func New[V Compoundish](owner *compound.Data, destroy func(*V), clone func(V) V) *List[V] {
	return &List[V]{owner: owner, destroy: destroy, clone: clone}
}

// Len returns the number of items.
func (l *List[V]) Len() int { return len(l.items) }

func growCapacity(current int) int {
	if current == 0 {
		return initialQuantum
	}
	return current + growQuantum
}

// Append moves item into the list. If item is a compound, the list adopts
// it, registering itself as a parent so the cycle tracker sees the edge.
// Appending a status value is rejected — a list is not an error channel.
func (l *List[V]) Append(item V) error {
	if item.IsStatus() {
		return fmt.Errorf("vlist: cannot append a status value")
	}
	if len(l.items) == cap(l.items) {
		grown := make([]V, len(l.items), growCapacity(cap(l.items)))
		copy(grown, l.items)
		l.items = grown
	}
	if cd := item.CompoundData(); cd != nil {
		compound.Adopt(l.owner, cd)
	}
	l.items = append(l.items, item)
	return nil
}

// Pop removes and returns the last element by move. Returns an error on
// an empty list.
func (l *List[V]) Pop() (V, error) {
	var zero V
	if len(l.items) == 0 {
		return zero, fmt.Errorf("vlist: pop from empty list")
	}
	last := len(l.items) - 1
	item := l.items[last]
	l.items[last] = zero
	l.items = l.items[:last]
	if cd := item.CompoundData(); cd != nil {
		compound.Abandon(l.owner, cd)
	}
	return item, nil
}

// normalizeIndex resolves a possibly-negative index (counted from the end)
// to an absolute one, or reports it out of range.
func (l *List[V]) normalizeIndex(i int) (int, bool) {
	if i < 0 {
		i += len(l.items)
	}
	if i < 0 || i >= len(l.items) {
		return 0, false
	}
	return i, true
}

// Item returns a clone of element i; negative indices count from the end.
func (l *List[V]) Item(i int) (V, error) {
	var zero V
	idx, ok := l.normalizeIndex(i)
	if !ok {
		return zero, fmt.Errorf("vlist: index %d out of range [0,%d)", i, len(l.items))
	}
	return l.clone(l.items[idx]), nil
}

// Del destroys elements in the half-open range [start,end) and shifts the
// tail down.
func (l *List[V]) Del(start, end int) error {
	if start < 0 || end < start || end > len(l.items) {
		return fmt.Errorf("vlist: invalid range [%d,%d) for length %d", start, end, len(l.items))
	}
	for i := start; i < end; i++ {
		item := l.items[i]
		if cd := item.CompoundData(); cd != nil {
			compound.Abandon(l.owner, cd)
		}
		l.destroy(&l.items[i])
	}
	n := copy(l.items[start:], l.items[end:])
	var zero V
	for i := start + n; i < len(l.items); i++ {
		l.items[i] = zero
	}
	l.items = l.items[:start+n]
	return nil
}

// Slice returns a new, independently-owned list holding clones of
// [start,end).
func (l *List[V]) Slice(start, end int, owner *compound.Data) (*List[V], error) {
	if start < 0 || end < start || end > len(l.items) {
		return nil, fmt.Errorf("vlist: invalid range [%d,%d) for length %d", start, end, len(l.items))
	}
	out := New(owner, l.destroy, l.clone)
	for i := start; i < end; i++ {
		// Slice clones rather than calling Append's adopt-on-compound
		// path redundantly — clone already produced an independent
		// reference, so adopt it into the new owner exactly once.
		item := l.clone(l.items[i])
		if cd := item.CompoundData(); cd != nil {
			compound.Adopt(owner, cd)
		}
		out.items = append(out.items, item)
	}
	return out, nil
}

// Each calls f for every item in order, for iteration and equality checks.
func (l *List[V]) Each(f func(V)) {
	for _, item := range l.items {
		f(item)
	}
}

// Equal reports whether l and other have the same length and pairwise
// equal elements under eq.
func (l *List[V]) Equal(other *List[V], eq func(a, b V) bool) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if !eq(l.items[i], other.items[i]) {
			return false
		}
	}
	return true
}
