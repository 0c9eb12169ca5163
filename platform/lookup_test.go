package platform

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/gles3/gles"
)

func fixed(table map[string]uintptr) gles.LookupFunc {
	return func(name string) unsafe.Pointer {
		return ptr(table[name])
	}
}

func TestChainFirstAcceptedWins(t *testing.T) {
	first := fixed(map[string]uintptr{"glClear": 0x1000})
	second := fixed(map[string]uintptr{"glClear": 0x2000, "glViewport": 0x3000})

	lookup := Chain(first, second)
	assert.Equal(t, uintptr(0x1000), uintptr(lookup("glClear")))
	assert.Equal(t, uintptr(0x3000), uintptr(lookup("glViewport")))
	assert.Nil(t, lookup("glFlush"))
}

func TestChainSkipsSentinels(t *testing.T) {
	wgl := fixed(map[string]uintptr{"glClear": 1, "glFlush": ^uintptr(0)})
	exports := fixed(map[string]uintptr{"glClear": 0x4000, "glFlush": 0x5000})

	lookup := Chain(wgl, exports)
	assert.Equal(t, uintptr(0x4000), uintptr(lookup("glClear")))
	assert.Equal(t, uintptr(0x5000), uintptr(lookup("glFlush")))
}

func TestChainNil(t *testing.T) {
	assert.Nil(t, Chain()("glClear"))
	assert.Nil(t, Chain(nil, nil)("glClear"))

	lookup := Chain(nil, fixed(map[string]uintptr{"glClear": 0x1000}))
	assert.Equal(t, uintptr(0x1000), uintptr(lookup("glClear")))
}
