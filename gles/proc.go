package gles

import (
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

// LookupFunc maps a symbol name to its address in the driver of the current
// context. It returns nil, or a platform sentinel rejected by AddrOK, when
// the symbol is not exported. glfw.GetProcAddress has this shape.
//
// A sentinel such as 1 or -1 is not a valid Go pointer. The loader converts
// the result to uintptr immediately and never keeps it as an unsafe.Pointer;
// implementations should build such values by reinterpreting a uintptr in
// memory rather than with unsafe.Pointer(uintptr(v)), which the race
// detector's pointer checks reject.
type LookupFunc func(name string) unsafe.Pointer

// Entry is the signature-independent view of a Proc.
type Entry interface {
	// Name returns the canonical Khronos name, e.g. "glClearColor".
	Name() string
	// Names returns the candidate names, canonical first.
	Names() []string
	LoadWith(lookup LookupFunc) bool
	IsLoaded() bool
	// Addr returns the resolved driver address, or 0.
	Addr() uintptr
}

type binding[F any] struct {
	addr uintptr
	fn   F
}

// Proc is the cell of one entry point. F is the Go rendering of the C
// signature. A Proc only moves from empty to loaded, or from one usable
// address to another; there is no unload.
type Proc[F any] struct {
	names []string
	cell  atomic.Pointer[binding[F]]
}

func (p *Proc[F]) Name() string {
	return p.names[0]
}

func (p *Proc[F]) Names() []string {
	return append([]string(nil), p.names...)
}

// LoadWith resolves the entry against lookup and publishes the address. On
// a miss the cell keeps whatever it held before, so reloading against a
// second lookup never clobbers an entry resolved by the first.
func (p *Proc[F]) LoadWith(lookup LookupFunc) bool {
	addr, ok := resolve(p.names, lookup)
	if !ok {
		return false
	}
	p.publish(addr)
	return true
}

func (p *Proc[F]) IsLoaded() bool {
	return p.cell.Load() != nil
}

func (p *Proc[F]) Addr() uintptr {
	if b := p.cell.Load(); b != nil {
		return b.addr
	}
	return 0
}

// publish binds a C-ABI trampoline for addr and stores it. The store is
// sequentially consistent, so a reader that sees the binding sees it whole.
func (p *Proc[F]) publish(addr uintptr) {
	if cur := p.cell.Load(); cur != nil && cur.addr == addr {
		return
	}
	b := &binding[F]{addr: addr}
	purego.RegisterFunc(&b.fn, addr)
	p.cell.Store(b)
}

// fn returns the trampoline, terminating the process when the entry was
// never loaded.
func (p *Proc[F]) fn() F {
	b := p.cell.Load()
	if b == nil {
		unresolved(p.names[0])
	}
	return b.fn
}
