package gles

import (
	"strings"
	"unsafe"
)

// GoStr copies a NUL-terminated string returned by the driver, such as the
// result of GetString, into a Go string. A nil pointer yields "".
func GoStr(p *Ubyte) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*Ubyte)(unsafe.Add(unsafe.Pointer(p), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(p, n))
}

// Str returns a NUL-terminated copy of s for parameters such as the name
// of GetUniformLocation. The result must be kept alive until the call
// returns.
func Str(s string) *Char {
	if !strings.HasSuffix(s, "\x00") {
		s += "\x00"
	}
	b := []byte(s)
	return &b[0]
}
