package alloc

import (
	"fmt"
	"os"
)

// bubblewrap is the number of canary bytes placed on each side of a
// debug-tracked block.
const bubblewrap = 32

const canaryByte = 0xFF

// debugAllocator wraps every block in canary regions filled with
// canaryByte and checks the trailing one on Free/Reallocate, catching
// out-of-bounds writes into the bubblewrap bytes past the logical block
// boundary. It is pure Go and has
// no platform dependency; see GuardPage for an mmap-backed variant that
// catches OOB writes the instant they happen rather than at free time.
type debugAllocator struct {
	verbose   bool
	allocated int
}

// NewDebug returns a fresh canary-guarded debug allocator. verbose, when
// true, logs every allocation to stderr the way the reference
// implementation's _uw_allocator_verbose flag does.
func NewDebug(verbose bool) Allocator {
	return &debugAllocator{verbose: verbose}
}

// Debug is a package-level debug allocator with verbose logging off.
var Debug Allocator = NewDebug(false)

func (d *debugAllocator) Allocate(nbytes int) []byte {
	if nbytes < 0 {
		return nil
	}
	region := make([]byte, nbytes+2*bubblewrap)
	for i := 0; i < bubblewrap; i++ {
		region[i] = canaryByte
		region[len(region)-1-i] = canaryByte
	}
	d.allocated++
	if d.verbose {
		fmt.Fprintf(os.Stderr, "alloc.Debug: %d bytes\n", nbytes)
	}
	return region[bubblewrap : bubblewrap+nbytes]
}

// checkRegion validates the trailing guard bytes still reachable via
// block's capacity. A slice header can't address memory before its own
// start, so only the trailing guard (the common case for a growing
// overrun) is checkable this way. GuardPage likewise guards only the
// trailing side, with a protected page right after the block.
func (d *debugAllocator) checkRegion(block []byte, nbytes int) {
	full := block[:cap(block)]
	for i := nbytes; i < len(full); i++ {
		if full[i] != canaryByte {
			panic(fmt.Sprintf("alloc.Debug: corrupted guard byte at offset %d past block end (size %d)", i-nbytes, nbytes))
		}
	}
}

func (d *debugAllocator) Reallocate(block []byte, oldNbytes, newNbytes int) []byte {
	if newNbytes < 0 {
		return nil
	}
	d.checkRegion(block, oldNbytes)
	nb := d.Allocate(newNbytes)
	n := oldNbytes
	if n > newNbytes {
		n = newNbytes
	}
	if n > len(block) {
		n = len(block)
	}
	copy(nb, block[:n])
	return nb
}

func (d *debugAllocator) Free(block []byte, nbytes int) {
	d.checkRegion(block, nbytes)
	d.allocated--
}
