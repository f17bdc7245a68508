package compound

// ParentsChunkSize is the number of parent slots held in one overflow
// chunk, matching the reference implementation's chunk layout.
const ParentsChunkSize = 4

type parentsChunk struct {
	parents  [ParentsChunkSize]*Data
	refcount [ParentsChunkSize]uint32
}

// Data is the ownership record embedded in (or attached alongside) every
// compound value. Refcount is the value's own reference count, managed by
// the owning package; everything else here tracks who has adopted it.
type Data struct {
	Refcount uint32

	// Destroying guards against reentering teardown of a value that is
	// already being finalized, e.g. because a cycle-break walk revisits it.
	Destroying bool

	usingList bool
	parents   [2]*Data
	parentsRC [2]uint32
	chunks    []parentsChunk
}

// IsEmbraced reports whether d has at least one parent.
func IsEmbraced(d *Data) bool {
	if d.usingList {
		return len(d.chunks) > 0
	}
	return d.parents[0] != nil || d.parents[1] != nil
}

// Adopt records parent as an owner of child, incrementing the existing
// parent/child link's refcount if parent already owns child. It then
// decrements child's own refcount by one, the reference transferred from
// the caller to the new parent.
//
// Adopting a value into itself (parent == child) only performs that
// refcount transfer; a compound value is never recorded as its own parent.
func Adopt(parent, child *Data) {
	if parent == child {
		child.Refcount--
		return
	}
	if child.usingList {
		child.adoptIntoList(parent)
		child.Refcount--
		return
	}
	if child.parents[0] == parent {
		child.parentsRC[0]++
		child.Refcount--
		return
	}
	if child.parents[1] == parent {
		child.parentsRC[1]++
		child.Refcount--
		return
	}
	if child.parents[0] == nil {
		child.parents[0] = parent
		child.parentsRC[0] = 1
		child.Refcount--
		return
	}
	if child.parents[1] == nil {
		child.parents[1] = parent
		child.parentsRC[1] = 1
		child.Refcount--
		return
	}
	// both embedded slots occupied by distinct parents: promote to the
	// chunked list, carrying the two embedded parents over into it.
	child.usingList = true
	child.chunks = append(child.chunks, parentsChunk{})
	nc := &child.chunks[0]
	nc.parents[0], nc.refcount[0] = child.parents[0], child.parentsRC[0]
	nc.parents[1], nc.refcount[1] = child.parents[1], child.parentsRC[1]
	nc.parents[2] = parent
	nc.refcount[2] = 1
	child.parents = [2]*Data{}
	child.parentsRC = [2]uint32{}
	child.Refcount--
}

func (child *Data) adoptIntoList(parent *Data) {
	var availChunk *parentsChunk
	availPos := 0
	for ci := range child.chunks {
		chunk := &child.chunks[ci]
		for i := 0; i < ParentsChunkSize; i++ {
			if chunk.parents[i] == parent {
				chunk.refcount[i]++
				return
			}
			if chunk.parents[i] == nil && availChunk == nil {
				availChunk = chunk
				availPos = i
			}
		}
	}
	if availChunk != nil {
		availChunk.parents[availPos] = parent
		availChunk.refcount[availPos] = 1
		return
	}
	child.chunks = append(child.chunks, parentsChunk{})
	nc := &child.chunks[len(child.chunks)-1]
	nc.parents[0] = parent
	nc.refcount[0] = 1
}

// Abandon removes one reference that parent holds on child. It returns true
// once parent's last reference to child is gone (the link itself is
// removed), or false if parent still owns child through other references.
// Abandoning a parent that isn't on child's list at all is a no-op that
// reports true, since the link is already gone as far as the caller cares.
func Abandon(parent, child *Data) bool {
	if parent == child {
		return true
	}
	if child.usingList {
		for ci := range child.chunks {
			chunk := &child.chunks[ci]
			for i := 0; i < ParentsChunkSize; i++ {
				if chunk.parents[i] == parent {
					chunk.refcount[i]--
					if chunk.refcount[i] != 0 {
						return false
					}
					chunk.parents[i] = nil
					child.compactList()
					return true
				}
			}
		}
		return true
	}
	if child.parents[0] == parent {
		child.parentsRC[0]--
		if child.parentsRC[0] != 0 {
			return false
		}
		child.parents[0] = nil
		return true
	}
	if child.parents[1] == parent {
		child.parentsRC[1]--
		if child.parentsRC[1] != 0 {
			return false
		}
		child.parents[1] = nil
		return true
	}
	return true
}

// compactList drops chunks left fully empty by the last Abandon call and
// demotes back to the embedded two-slot form once two or fewer parents
// remain, regardless of which chunk they started in.
func (child *Data) compactList() {
	out := child.chunks[:0]
	for _, c := range child.chunks {
		empty := true
		for _, p := range c.parents {
			if p != nil {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, c)
		}
	}
	child.chunks = out

	total := 0
	for _, c := range child.chunks {
		for _, p := range c.parents {
			if p != nil {
				total++
			}
		}
	}
	if total > 2 {
		return
	}
	idx := 0
	for _, c := range child.chunks {
		for i, p := range c.parents {
			if p != nil {
				child.parents[idx] = p
				child.parentsRC[idx] = c.refcount[i]
				idx++
			}
		}
	}
	for ; idx < 2; idx++ {
		child.parents[idx] = nil
		child.parentsRC[idx] = 0
	}
	child.chunks = nil
	child.usingList = false
}

// bit flags for the cyclic-reference walk
const (
	haveCyclicRefs  = 1 << iota // a cycle leading back to the starting value was found
	nonzeroRefcount             // some value on the chain still has outside references
)

// NeedBreakCyclicRefs walks d's ancestors looking for a path that leads
// back to d itself. It is called when d's own refcount has just dropped to
// zero, to decide whether ordinary parent-by-parent teardown will reach d
// or whether a cycle is keeping it artificially alive and must be broken
// explicitly.
func NeedBreakCyclicRefs(d *Data) bool {
	return checkCyclicRefs(d, d, map[*Data]bool{}) == haveCyclicRefs
}

func checkCyclicRefs(first, d *Data, visited map[*Data]bool) int {
	result := 0
	if d.usingList {
		for ci := range d.chunks {
			chunk := &d.chunks[ci]
			for i := 0; i < ParentsChunkSize; i++ {
				if p := chunk.parents[i]; p != nil {
					result |= checkParentLink(first, p, visited)
				}
			}
		}
		return result
	}
	if d.parents[0] != nil {
		result |= checkParentLink(first, d.parents[0], visited)
	}
	if d.parents[1] != nil {
		result |= checkParentLink(first, d.parents[1], visited)
	}
	return result
}

// checkParentLink walks each parent's own ancestors at most once, so a
// cycle that does not pass through first cannot recurse forever.
func checkParentLink(first, parent *Data, visited map[*Data]bool) int {
	result := 0
	if parent.Refcount != 0 {
		result |= nonzeroRefcount
	}
	if parent == first {
		result |= haveCyclicRefs
	} else if !visited[parent] {
		visited[parent] = true
		result |= checkCyclicRefs(first, parent, visited)
	}
	return result
}
