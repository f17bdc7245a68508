package value

import "github.com/joshuapare/uwvalue/compound"

// Clone returns a new reference to v. For heap-backed compounds this bumps
// the shared refcount; for everything else (scalars, strings, statuses) a
// Go struct copy already is the cheap, correctness-preserving clone —
// strings in particular only pay a real allocation the next time they're
// mutated (see vstring's detach-on-mutate).
func Clone(v Value) Value {
	d := Table.Get(v.typeID)
	if d != nil && d.VTable.Clone != nil {
		return d.VTable.Clone(v)
	}
	if v.extra != nil {
		v.extra.compound.Refcount++
	}
	return v
}

// Move transfers v's cell to the caller and resets the source to Null.
// No refcount traffic: ownership, not reference count, changes hands.
func Move(v *Value) Value {
	out := *v
	*v = Null()
	return out
}

// DeepCopy recursively clones structure: compounds get a fresh payload
// built from deep copies of their children; everything else behaves like
// Clone, since strings are always effectively copy-on-write already.
func DeepCopy(v Value) Value {
	d := Table.Get(v.typeID)
	if d != nil && d.VTable.DeepCopy != nil {
		return d.VTable.DeepCopy(v)
	}
	return Clone(v)
}

// Destroy releases v's reference. If the underlying payload's refcount
// drops to zero, compound teardown additionally consults the cycle
// tracker before actually finalizing: an embraced compound whose cycle
// can't yet be proven safe to break is left alone rather than torn down
// out from under a parent that still references it.
func Destroy(v *Value) {
	if v.extra == nil {
		*v = Null()
		return
	}
	ed := v.extra
	// A compound held only through its parents already sits at zero (Adopt
	// moved the reference onto the parent link), so it is not decremented.
	if ed.compound.Refcount > 0 {
		ed.compound.Refcount--
	}
	if ed.compound.Refcount != 0 {
		*v = Null()
		return
	}

	d := Table.Get(v.typeID)
	if d != nil && d.Compound {
		if ed.compound.Destroying {
			*v = Null()
			return
		}
		if compound.IsEmbraced(&ed.compound) && !compound.NeedBreakCyclicRefs(&ed.compound) {
			*v = Null()
			return
		}
		ed.compound.Destroying = true
	}
	if d != nil && d.VTable.Finalize != nil {
		d.VTable.Finalize(v)
	}
	*v = Null()
}
