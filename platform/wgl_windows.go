package platform

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/spaghettifunk/gles3/gles"
	"github.com/spaghettifunk/gles3/internal/core"
)

// WGL resolves entry points through wglGetProcAddress. wglGetProcAddress
// does not return the GL 1.1 functions exported by opengl32.dll itself, so
// those are looked up in the DLL's export table.
type WGL struct {
	opengl32       *windows.LazyDLL
	getProcAddress *windows.LazyProc
}

func OpenWGL() (*WGL, error) {
	dll := windows.NewLazySystemDLL("opengl32.dll")
	if err := dll.Load(); err != nil {
		return nil, fmt.Errorf("opengl32.dll: %w: %v", core.ErrLibraryNotFound, err)
	}
	return &WGL{
		opengl32:       dll,
		getProcAddress: dll.NewProc("wglGetProcAddress"),
	}, nil
}

// Lookup implements gles.LookupFunc. wglGetProcAddress answers 1, 2, 3 or
// -1 for unknown names on some drivers; AddrOK rejects all of them.
func (w *WGL) Lookup(name string) unsafe.Pointer {
	cname, err := windows.BytePtrFromString(name)
	if err != nil {
		return nil
	}
	addr, _, _ := w.getProcAddress.Call(uintptr(unsafe.Pointer(cname)))
	if gles.AddrOK(addr) {
		return ptr(addr)
	}
	proc := w.opengl32.NewProc(name)
	if err := proc.Find(); err != nil {
		return nil
	}
	return ptr(proc.Addr())
}

// HasContext reports whether a WGL context is current on the calling thread.
func (w *WGL) HasContext() bool {
	ctx, _, _ := w.opengl32.NewProc("wglGetCurrentContext").Call()
	return ctx != 0
}

func (w *WGL) Close() error {
	return nil
}
