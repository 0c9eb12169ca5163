package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/spaghettifunk/gles3/gles"
	"github.com/spaghettifunk/gles3/internal/core"
)

var (
	eglLibraries  = []string{"libEGL.so.1", "libEGL.so"}
	glesLibraries = []string{"libGLESv2.so.2", "libGLESv2.so"}
)

// EGL resolves entry points through eglGetProcAddress, falling back to the
// exports of libGLESv2 for drivers that only return extension functions
// from eglGetProcAddress.
type EGL struct {
	egl  uintptr
	gles uintptr

	getProcAddress    func(name string) uintptr
	getCurrentContext func() uintptr
}

// OpenEGL loads libEGL and libGLESv2. It does not create a context.
func OpenEGL() (*EGL, error) {
	egl, err := dlopenFirst(eglLibraries)
	if err != nil {
		return nil, err
	}
	lib, err := dlopenFirst(glesLibraries)
	if err != nil {
		_ = purego.Dlclose(egl)
		return nil, err
	}

	e := &EGL{egl: egl, gles: lib}
	purego.RegisterLibFunc(&e.getProcAddress, egl, "eglGetProcAddress")
	purego.RegisterLibFunc(&e.getCurrentContext, egl, "eglGetCurrentContext")
	core.LogDebug("EGL loaded")
	return e, nil
}

func dlopenFirst(names []string) (uintptr, error) {
	var errs []error
	for _, name := range names {
		handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return handle, nil
		}
		errs = append(errs, err)
	}
	return 0, fmt.Errorf("%s: %w", names[0], errors.Join(append([]error{core.ErrLibraryNotFound}, errs...)...))
}

// HasContext reports whether an EGL context is current on the calling
// thread.
func (e *EGL) HasContext() bool {
	return e.getCurrentContext() != 0
}

// Lookup implements gles.LookupFunc.
func (e *EGL) Lookup(name string) unsafe.Pointer {
	if addr := e.getProcAddress(name); gles.AddrOK(addr) {
		return ptr(addr)
	}
	addr, err := purego.Dlsym(e.gles, name)
	if err != nil {
		return nil
	}
	return ptr(addr)
}

func (e *EGL) Close() error {
	return errors.Join(purego.Dlclose(e.gles), purego.Dlclose(e.egl))
}
