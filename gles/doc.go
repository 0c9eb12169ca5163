// Package gles loads and dispatches the OpenGL ES 3.0 entry points.
//
// Every GLES 3.0 command has a process-wide cell in Procs, a loader
// (Procs.X.LoadWith), a readiness query (Procs.X.IsLoaded) and a shim
// function with the Khronos name minus its "gl" prefix:
//
//	win.MakeContextCurrent()
//	gles.LoadAll(glfw.GetProcAddress)
//	gles.ClearColor(0.2, 0.3, 0.3, 1.0)
//	gles.Clear(gles.COLOR_BUFFER_BIT)
//
// Each entry tries its canonical name first and then the vendor aliases
// (ARB, EXT, NV, OES, APPLE, ANGLE, ATI, INGR) the registry lists for it.
// Addresses below 8 and the all-ones value are treated as "not exported".
//
// Calling a shim whose cell is still empty is a programming error: the
// process logs the entry name and exits. Use IsLoaded, Missing or Require to
// gate optional functionality.
//
// Shims call the driver through purego trampolines, so the package does not
// need cgo. The trampolines use the platform C calling convention.
//
// # Build tags
//
//	debug        assert candidate names while resolving
//	trace        with debug: log every call and keep the last 32 call names
//	error_check  with debug: call GetError after every call and log failures
//
// The error check is skipped while GetError itself is not loaded.
//
// Without the tags the envelopes are compile-time constants set to false and
// a shim is a cell load plus one indirect call.
package gles

//go:generate go run ../cmd/glesgen generate -out .
