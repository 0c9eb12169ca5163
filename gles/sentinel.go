package gles

// AddrOK reports whether addr, as returned by a host lookup, is a usable
// function address. Some drivers answer "not exported" with 1, 2 or 3
// instead of nil, others with all ones; nothing in the first 8 bytes of the
// address space can be code.
func AddrOK(addr uintptr) bool {
	return addr >= 8 && addr != ^uintptr(0)
}
