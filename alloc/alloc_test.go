package alloc

import "testing"

func testZeroInit(t *testing.T, a Allocator) {
	t.Helper()
	b := a.Allocate(16)
	if len(b) != 16 {
		t.Fatalf("expected 16 bytes, got %d", len(b))
	}
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d not zero-initialized: %x", i, c)
		}
	}
}

func testGrowZeroFills(t *testing.T, a Allocator) {
	t.Helper()
	b := a.Allocate(4)
	copy(b, []byte{1, 2, 3, 4})
	b = a.Reallocate(b, 4, 8)
	if len(b) != 8 {
		t.Fatalf("expected 8 bytes after grow, got %d", len(b))
	}
	for i := 0; i < 4; i++ {
		if b[i] != byte(i+1) {
			t.Fatalf("grow did not preserve contents at %d", i)
		}
	}
	for i := 4; i < 8; i++ {
		if b[i] != 0 {
			t.Fatalf("newly exposed byte %d not zero-filled: %x", i, b[i])
		}
	}
}

func TestStd(t *testing.T) {
	testZeroInit(t, Std)
	testGrowZeroFills(t, Std)
}

func TestDebugCanary(t *testing.T) {
	testZeroInit(t, Debug)
	testGrowZeroFills(t, Debug)

	d := NewDebug(false)
	b := d.Allocate(4)
	d.Free(b, 4) // must not panic: nothing wrote past the block
}

func TestDebugCatchesOverrun(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on out-of-bounds write detection")
		}
	}()
	d := NewDebug(false)
	b := d.Allocate(4)
	full := b[:cap(b)]
	full[4] = 0xAB // corrupt the trailing guard byte
	d.Free(b, 4)
}

func TestPanicAllocatorPanicsOnInnerFailure(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	p := NewPanicking(failAllocator{})
	p.Allocate(8)
}

// failAllocator always reports OOM, to exercise the Panic wrapper.
type failAllocator struct{}

func (failAllocator) Allocate(nbytes int) []byte                   { return nil }
func (failAllocator) Reallocate(block []byte, old, new int) []byte { return nil }
func (failAllocator) Free(block []byte, nbytes int)                {}
