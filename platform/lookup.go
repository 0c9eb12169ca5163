// Package platform provides host lookups for gles.LoadAll: EGL and WGL
// symbol resolution and a combinator for chaining several of them. The
// GLFW window and context live in platform/window.
package platform

import (
	"unsafe"

	"github.com/spaghettifunk/gles3/gles"
)

// Chain returns a lookup that asks each of lookups in turn and returns the
// first address gles.AddrOK accepts. Nil lookups are skipped.
func Chain(lookups ...gles.LookupFunc) gles.LookupFunc {
	return func(name string) unsafe.Pointer {
		for _, lookup := range lookups {
			if lookup == nil {
				continue
			}
			if p := lookup(name); gles.AddrOK(uintptr(p)) {
				return p
			}
		}
		return nil
	}
}

// ptr converts a symbol address returned by a loader into the pointer type
// LookupFunc returns.
func ptr(addr uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}
