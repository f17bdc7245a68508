package value

import (
	"fmt"
	"io"
	"math"

	"github.com/joshuapare/uwvalue/hashstream"
	"github.com/joshuapare/uwvalue/registry"
)

func init() {
	must(Table.RegisterAt(registry.Null, &registry.Descriptor[Value]{
		Name: "Null",
		VTable: registry.VTable[Value]{
			ToString:      func(Value) string { return "null" },
			IsTrue:        func(Value) bool { return false },
			Hash:          func(Value) uint64 { return hashstream.U64(uint64(registry.Null)) },
			EqualSameType: func(Value, Value) bool { return true },
			Dump:          func(w io.Writer, v Value, indent int) { fmt.Fprintf(w, "%snull\n", spaces(indent)) },
		},
	}))

	must(Table.RegisterAt(registry.Bool, &registry.Descriptor[Value]{
		Name: "Bool",
		VTable: registry.VTable[Value]{
			ToString: func(v Value) string {
				if v.num != 0 {
					return "true"
				}
				return "false"
			},
			IsTrue:        func(v Value) bool { return v.num != 0 },
			Hash:          numericHash,
			EqualSameType: func(a, b Value) bool { return a.num == b.num },
			EqualAnyType:  numericEqualAny,
		},
	}))

	must(Table.RegisterAt(registry.Int, &registry.Descriptor[Value]{
		Name: "Int",
		VTable: registry.VTable[Value]{
			ToString:      func(v Value) string { return fmt.Sprintf("%d", v.AsLegacyInt()) },
			IsTrue:        func(v Value) bool { return v.num != 0 },
			Hash:          numericHash,
			EqualSameType: func(a, b Value) bool { return a.num == b.num },
			EqualAnyType:  numericEqualAny,
		},
	}))

	must(Table.RegisterAt(registry.Signed, &registry.Descriptor[Value]{
		Name: "Signed",
		VTable: registry.VTable[Value]{
			ToString:      func(v Value) string { return fmt.Sprintf("%d", v.AsInt()) },
			IsTrue:        func(v Value) bool { return v.num != 0 },
			Hash:          numericHash,
			EqualSameType: func(a, b Value) bool { return a.num == b.num },
			EqualAnyType:  numericEqualAny,
		},
	}))

	must(Table.RegisterAt(registry.Unsigned, &registry.Descriptor[Value]{
		Name: "Unsigned",
		VTable: registry.VTable[Value]{
			ToString:      func(v Value) string { return fmt.Sprintf("%d", v.AsUint()) },
			IsTrue:        func(v Value) bool { return v.num != 0 },
			Hash:          numericHash,
			EqualSameType: func(a, b Value) bool { return a.num == b.num },
			EqualAnyType:  numericEqualAny,
		},
	}))

	must(Table.RegisterAt(registry.Float, &registry.Descriptor[Value]{
		Name: "Float",
		VTable: registry.VTable[Value]{
			ToString:      func(v Value) string { return fmt.Sprintf("%g", v.AsFloat()) },
			IsTrue:        func(v Value) bool { return v.AsFloat() != 0 },
			Hash:          numericHash,
			EqualSameType: func(a, b Value) bool { return a.num == b.num },
			EqualAnyType:  numericEqualAny,
		},
	}))

	must(Table.RegisterAt(registry.String, &registry.Descriptor[Value]{
		Name: "String",
		VTable: registry.VTable[Value]{
			ToString: func(v Value) string { return v.str.String() },
			IsTrue:   func(v Value) bool { return v.str.Len() != 0 },
			Hash: func(v Value) uint64 {
				var ctx hashstream.Context
				hashstream.Init(&ctx)
				v.str.Hash(&ctx)
				return hashstream.Finish(&ctx)
			},
			EqualSameType: func(a, b Value) bool { return a.str.Equal(&b.str) },
			EqualAnyType: func(a Value, b any) bool {
				bv, ok := b.(Value)
				if !ok || bv.typeID != registry.CharPtr {
					return false
				}
				return bv.charp.Equal(&a.str)
			},
			Dump: func(w io.Writer, v Value, indent int) {
				fmt.Fprintf(w, "%sstring(%d) %q\n", spaces(indent), v.str.Len(), v.str.String())
			},
		},
	}))

	must(Table.RegisterAt(registry.CharPtr, &registry.Descriptor[Value]{
		Name: "CharPtr",
		VTable: registry.VTable[Value]{
			ToString: func(v Value) string {
				rs, err := v.charp.Runes()
				if err != nil {
					return ""
				}
				return string(rs)
			},
			IsTrue: func(v Value) bool { return v.charp.Len() != 0 },
			Hash: func(v Value) uint64 {
				var ctx hashstream.Context
				hashstream.Init(&ctx)
				v.charp.Hash(&ctx)
				return hashstream.Finish(&ctx)
			},
			EqualSameType: func(a, b Value) bool {
				av, aerr := a.charp.Runes()
				bv, berr := b.charp.Runes()
				if aerr != nil || berr != nil || len(av) != len(bv) {
					return false
				}
				for i := range av {
					if av[i] != bv[i] {
						return false
					}
				}
				return true
			},
			EqualAnyType: func(a Value, b any) bool {
				bv, ok := b.(Value)
				if !ok || bv.typeID != registry.String {
					return false
				}
				return a.charp.Equal(&bv.str)
			},
		},
	}))

	must(Table.RegisterAt(registry.Status, &registry.Descriptor[Value]{
		Name: "Status",
		VTable: registry.VTable[Value]{
			ToString:      func(v Value) string { return v.AsStatus().Error() },
			IsTrue:        func(v Value) bool { return v.AsStatus().IsOK() },
			Hash:          func(v Value) uint64 { return hashstream.U64(uint64(v.aux8)<<16 | uint64(v.aux16)) },
			EqualSameType: func(a, b Value) bool { return a.aux8 == b.aux8 && a.aux16 == b.aux16 },
		},
	}))

	must(Table.RegisterAt(registry.List, &registry.Descriptor[Value]{
		Name:     "List",
		Compound: true,
		VTable: registry.VTable[Value]{
			Create: func(args ...any) (Value, error) {
				return newListValue(), nil
			},
			Finalize: func(v *Value) {
				v.extra.list.Each(func(item Value) { Destroy(&item) })
			},
			ToString: func(v Value) string { return fmt.Sprintf("<list len=%d>", v.extra.list.Len()) },
			IsTrue:   func(v Value) bool { return v.extra.list.Len() != 0 },
			Hash: func(v Value) uint64 {
				var ctx hashstream.Context
				hashstream.Init(&ctx)
				hashstream.FeedU64(&ctx, uint64(registry.List))
				v.extra.list.Each(func(item Value) { hashstream.FeedU64(&ctx, Hash(item)) })
				return hashstream.Finish(&ctx)
			},
			EqualSameType: func(a, b Value) bool {
				return a.extra.list.Equal(b.extra.list, Equal)
			},
			DeepCopy: func(v Value) Value {
				out := newListValue()
				v.extra.list.Each(func(item Value) {
					_ = out.extra.list.Append(DeepCopy(item))
				})
				return out
			},
			Dump: func(w io.Writer, v Value, indent int) {
				fmt.Fprintf(w, "%slist, %d item(s):\n", spaces(indent), v.extra.list.Len())
				v.extra.list.Each(func(item Value) { Dump(w, item, indent+2) })
			},
		},
	}))

	must(Table.RegisterAt(registry.Map, &registry.Descriptor[Value]{
		Name:     "Map",
		Compound: true,
		VTable: registry.VTable[Value]{
			Create: func(args ...any) (Value, error) {
				return newMapValue(), nil
			},
			Finalize: func(v *Value) {
				v.extra.m.Finalize()
			},
			ToString: func(v Value) string { return fmt.Sprintf("<map len=%d>", v.extra.m.Len()) },
			IsTrue:   func(v Value) bool { return v.extra.m.Len() != 0 },
			Hash: func(v Value) uint64 {
				var ctx hashstream.Context
				hashstream.Init(&ctx)
				hashstream.FeedU64(&ctx, uint64(registry.Map))
				v.extra.m.Each(func(k, val Value) {
					hashstream.FeedU64(&ctx, Hash(k))
					hashstream.FeedU64(&ctx, Hash(val))
				})
				return hashstream.Finish(&ctx)
			},
			EqualSameType: func(a, b Value) bool {
				return a.extra.m.Equal(b.extra.m, Equal)
			},
			DeepCopy: func(v Value) Value {
				out := newMapValue()
				v.extra.m.Each(func(k, val Value) {
					_ = out.extra.m.Update(DeepCopy(k), DeepCopy(val))
				})
				return out
			},
			Dump: func(w io.Writer, v Value, indent int) {
				fmt.Fprintf(w, "%smap, %d pair(s):\n", spaces(indent), v.extra.m.Len())
				v.extra.m.Each(func(k, val Value) {
					fmt.Fprintf(w, "%skey:\n", spaces(indent+2))
					Dump(w, k, indent+4)
					fmt.Fprintf(w, "%svalue:\n", spaces(indent+2))
					Dump(w, val, indent+4)
				})
			},
		},
	}))

	must(Table.RegisterAt(registry.UserCompound, &registry.Descriptor[Value]{
		Name:     "UserCompound",
		Compound: true,
		VTable: registry.VTable[Value]{
			ToString: func(Value) string { return "<usercompound>" },
		},
	}))

	must(Table.RegisterAt(registry.File, &registry.Descriptor[Value]{
		Name: "File",
		VTable: registry.VTable[Value]{
			Create:   func(args ...any) (Value, error) { return NewFile(), nil },
			Finalize: func(v *Value) { _ = FileClose(*v) },
			ToString: func(v Value) string { return fmt.Sprintf("<file %s>", FileGetName(v)) },
		},
	}))

	must(Table.RegisterAt(registry.StringIO, &registry.Descriptor[Value]{
		Name: "StringIO",
		VTable: registry.VTable[Value]{
			Create:   func(args ...any) (Value, error) { return NewStringIO(), nil },
			Finalize: func(v *Value) { _ = FileClose(*v) },
			ToString: func(v Value) string { return fmt.Sprintf("<stringio len=%d>", len(StringIOBytes(v))) },
		},
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// numericHash folds v's value, canonicalized to its float64 bit pattern,
// under a shared "numeric" tag so Signed(5), Unsigned(5), Float(5.0), and
// Bool(true) (as 1) all hash identically — the same equivalence class
// numericEqualAny recognizes for cross-type equality.
func numericHash(v Value) uint64 {
	f, _ := asFloat64(v)
	var ctx hashstream.Context
	hashstream.Init(&ctx)
	hashstream.FeedU64(&ctx, uint64(registry.Signed))
	hashstream.FeedU64(&ctx, math.Float64bits(f))
	return hashstream.Finish(&ctx)
}

// numericEqualAny compares a (Int, Signed, Unsigned, Float, or Bool) against any other
// numeric-family cell by actual numeric value, not bit pattern.
func numericEqualAny(a Value, b any) bool {
	bv, ok := b.(Value)
	if !ok {
		return false
	}
	af, ok := asFloat64(a)
	if !ok {
		return false
	}
	bf, ok := asFloat64(bv)
	if !ok {
		return false
	}
	return af == bf
}

func asFloat64(v Value) (float64, bool) {
	switch v.typeID {
	case registry.Int:
		return float64(v.AsLegacyInt()), true
	case registry.Signed:
		return float64(v.AsInt()), true
	case registry.Unsigned:
		return float64(v.AsUint()), true
	case registry.Float:
		return v.AsFloat(), true
	case registry.Bool:
		if v.num != 0 {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
