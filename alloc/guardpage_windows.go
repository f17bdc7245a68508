//go:build windows

package alloc

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

// guardPageAllocator is the Windows equivalent of the Unix mmap/mprotect
// guard-page allocator: VirtualAlloc reserves and commits pages, then
// VirtualProtect marks the trailing page PAGE_NOACCESS so an overrun
// faults immediately.
type guardPageAllocator struct {
	pageSize int

	mu      sync.Mutex
	regions map[uintptr]uintptr // block start address -> VirtualAlloc base
}

// NewGuardPage returns a guard-page allocator for the current platform.
func NewGuardPage() Allocator {
	var si windows.SystemInfo
	windows.GetSystemInfo(&si)
	pageSize := int(si.PageSize)
	if pageSize == 0 {
		pageSize = 4096
	}
	return &guardPageAllocator{
		pageSize: pageSize,
		regions:  make(map[uintptr]uintptr),
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
	total := uintptr((pages + 1) * g.pageSize)

	base, err := windows.VirtualAlloc(0, total, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil
	}
	guardPageAddr := base + uintptr(pages*g.pageSize)
	var oldProtect uint32
	if err := windows.VirtualProtect(guardPageAddr, uintptr(g.pageSize), windows.PAGE_NOACCESS, &oldProtect); err != nil {
		_ = windows.VirtualFree(base, 0, windows.MEM_RELEASE)
		return nil
	}

	offset := pages*g.pageSize - nbytes
	dataPtr := (*byte)(unsafe.Pointer(base + uintptr(offset)))
	block := unsafe.Slice(dataPtr, nbytes)

	g.mu.Lock()
	g.regions[blockAddr(block)] = base
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
	base, ok := g.regions[addr]
	delete(g.regions, addr)
	g.mu.Unlock()
	if !ok {
		panic("alloc.GuardPage: Free of untracked block")
	}
	_ = windows.VirtualFree(base, 0, windows.MEM_RELEASE)
}
