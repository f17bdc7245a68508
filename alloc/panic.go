package alloc

import "fmt"

// panicAllocator wraps another Allocator and converts its OOM returns into
// panics, for callers that have decided allocation failure is always a
// programmer/environment error worth crashing on rather than a status to
// propagate.
type panicAllocator struct {
	inner Allocator
}

// NewPanicking wraps inner so its Allocate/Reallocate calls panic instead
// of returning nil on failure.
func NewPanicking(inner Allocator) Allocator {
	return panicAllocator{inner: inner}
}

// Panic is NewPanicking(Std), the common case.
var Panic Allocator = NewPanicking(Std)

func (p panicAllocator) Allocate(nbytes int) []byte {
	block := p.inner.Allocate(nbytes)
	if block == nil && nbytes > 0 {
		panic(fmt.Sprintf("alloc: Allocate(%d) failed", nbytes))
	}
	return block
}

func (p panicAllocator) Reallocate(block []byte, oldNbytes, newNbytes int) []byte {
	nb := p.inner.Reallocate(block, oldNbytes, newNbytes)
	if nb == nil && newNbytes > 0 {
		panic(fmt.Sprintf("alloc: Reallocate(%d, %d) failed", oldNbytes, newNbytes))
	}
	return nb
}

func (p panicAllocator) Free(block []byte, nbytes int) {
	p.inner.Free(block, nbytes)
}
