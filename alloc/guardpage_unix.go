//go:build linux || darwin || freebsd

package alloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// guardPageAllocator places every block flush against a trailing PROT_NONE
// page. Any write one byte past the block's end faults the process
// immediately (Go's runtime turns the resulting SIGSEGV into a panic),
// instead of merely being detected later the way the canary-based Debug
// allocator detects it at Free/Reallocate time.
//
// This is intentionally expensive (one mmap + one mprotect per allocation)
// and meant for targeted debugging sessions, not general use.
type guardPageAllocator struct {
	pageSize int

	mu      sync.Mutex
	regions map[uintptr][]byte // block start address -> full mmap'd region
}

// NewGuardPage returns a guard-page allocator for the current platform.
func NewGuardPage() Allocator {
	return &guardPageAllocator{
		pageSize: unix.Getpagesize(),
		regions:  make(map[uintptr][]byte),
	}
}

// GuardPage is the package-level guard-page allocator.
var GuardPage Allocator = NewGuardPage()

func blockAddr(block []byte) uintptr {
	if len(block) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&block[0]))
}

func (g *guardPageAllocator) Allocate(nbytes int) []byte {
	if nbytes < 0 {
		return nil
	}
	if nbytes == 0 {
		return []byte{}
	}
	pages := (nbytes + g.pageSize - 1) / g.pageSize
	total := (pages + 1) * g.pageSize // data pages + one trailing guard page

	region, err := unix.Mmap(-1, 0, total, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil
	}
	if err := unix.Mprotect(region[pages*g.pageSize:], unix.PROT_NONE); err != nil {
		_ = unix.Munmap(region)
		return nil
	}
	// Place the block flush against the guard page so any overrun touches
	// PROT_NONE memory on the very next byte.
	offset := pages*g.pageSize - nbytes
	block := region[offset : offset+nbytes : offset+nbytes]

	g.mu.Lock()
	g.regions[blockAddr(block)] = region
	g.mu.Unlock()
	return block
}

func (g *guardPageAllocator) Reallocate(block []byte, oldNbytes, newNbytes int) []byte {
	nb := g.Allocate(newNbytes)
	if nb == nil && newNbytes > 0 {
		return nil
	}
	n := oldNbytes
	if n > newNbytes {
		n = newNbytes
	}
	if n > len(block) {
		n = len(block)
	}
	copy(nb, block[:n])
	g.Free(block, oldNbytes)
	return nb
}

func (g *guardPageAllocator) Free(block []byte, nbytes int) {
	if nbytes == 0 {
		return
	}
	addr := blockAddr(block)
	g.mu.Lock()
	region, ok := g.regions[addr]
	delete(g.regions, addr)
	g.mu.Unlock()
	if !ok {
		panic("alloc.GuardPage: Free of untracked block")
	}
	_ = unix.Munmap(region)
}
