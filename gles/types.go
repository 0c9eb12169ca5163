package gles

// Scalar types of the Khronos headers, as aliases so plain Go values can be
// passed to the shims.
type (
	Enum     = uint32
	Bitfield = uint32
	Uint     = uint32
	Int      = int32
	Sizei    = int32
	Boolean  = uint8
	Float    = float32
	Intptr   = int
	Sizeiptr = int
	Char     = byte
	Ubyte    = uint8
	Int64    = int64
	Uint64   = uint64
	// Sync is an opaque GLsync handle.
	Sync = uintptr
)
