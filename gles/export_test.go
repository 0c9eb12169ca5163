package gles

import (
	"unsafe"

	"github.com/spaghettifunk/gles3/internal/core"
)

func (p *Proc[F]) reset() {
	p.cell.Store(nil)
}

// resetAll empties every cell. Production code never unloads; tests need a
// fresh table per case because the cells are process-wide.
func resetAll() {
	for _, e := range entries[:] {
		e.(interface{ reset() }).reset()
	}
	core.Metrics().Reset()
}

// addrPointer reinterprets addr as a pointer without a uintptr conversion,
// which checkptr rejects for values below the first page such as the
// sentinels 1, 2 and 3.
func addrPointer(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

// fakeAddr returns a distinct usable address that is never called.
func fakeAddr(i int) unsafe.Pointer {
	return addrPointer(uintptr(0x10000 + i*16))
}

func lookupOf(table map[string]unsafe.Pointer) LookupFunc {
	return func(name string) unsafe.Pointer {
		return table[name]
	}
}
