package value

import (
	"github.com/joshuapare/uwvalue/compound"
	"github.com/joshuapare/uwvalue/registry"
	"github.com/joshuapare/uwvalue/status"
	"github.com/joshuapare/uwvalue/vlist"
)

// newListValue builds an empty List cell, wiring its vlist.List[Value] to
// Destroy/Clone so appending or removing an item runs the same dispatch as
// everywhere else in the runtime.
func newListValue() Value {
	ed := &extraData{compound: compound.Data{Refcount: 1}}
	ed.list = vlist.New(&ed.compound,
		func(item *Value) { Destroy(item) },
		func(item Value) Value { return Clone(item) },
	)
	return Value{typeID: registry.List, extra: ed}
}

// NewList returns a fresh, empty List cell.
func NewList() Value { return newListValue() }

// ListAppend moves item onto the end of list, which must be a List cell.
// Appending a status value is rejected, matching the spec's "a list is not
// an error channel" invariant.
func ListAppend(list *Value, item Value) status.Status {
	list.mustBeType(registry.List)
	if err := list.extra.list.Append(item); err != nil {
		return status.Newf(status.IncompatibleType, "%v", err)
	}
	return status.Ok
}

// ListPop removes and returns the last item of list.
func ListPop(list *Value) (Value, status.Status) {
	list.mustBeType(registry.List)
	item, err := list.extra.list.Pop()
	if err != nil {
		return Value{}, status.ErrPopFromEmptyList
	}
	return item, status.Ok
}

// ListItem returns a clone of list's i'th item; negative indices count from
// the end.
func ListItem(list Value, i int) (Value, status.Status) {
	list.mustBeType(registry.List)
	item, err := list.extra.list.Item(i)
	if err != nil {
		return Value{}, status.Newf(status.IncompatibleType, "%v", err)
	}
	return item, status.Ok
}

// ListLen reports the number of items in list.
func ListLen(list Value) int {
	list.mustBeType(registry.List)
	return list.extra.list.Len()
}

// ListDel destroys the items of list in the half-open range [start,end).
func ListDel(list *Value, start, end int) status.Status {
	list.mustBeType(registry.List)
	if err := list.extra.list.Del(start, end); err != nil {
		return status.Newf(status.IncompatibleType, "%v", err)
	}
	return status.Ok
}

// ListSlice returns a new, independently-owned List holding clones of
// list's [start,end) range.
func ListSlice(list Value, start, end int) (Value, status.Status) {
	list.mustBeType(registry.List)
	out := newListValue()
	sliced, err := list.extra.list.Slice(start, end, &out.extra.compound)
	if err != nil {
		return Value{}, status.Newf(status.IncompatibleType, "%v", err)
	}
	out.extra.list = sliced
	return out, status.Ok
}

// ListEach calls f for every item of list, in order.
func ListEach(list Value, f func(Value)) {
	list.mustBeType(registry.List)
	list.extra.list.Each(f)
}
