package gles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddrOK(t *testing.T) {
	assert.False(t, AddrOK(0))
	for p := uintptr(1); p < 8; p++ {
		assert.False(t, AddrOK(p), "%d", p)
	}
	assert.True(t, AddrOK(8))
	assert.True(t, AddrOK(0x7fff_0000))
	assert.False(t, AddrOK(^uintptr(0)))
	assert.True(t, AddrOK(^uintptr(0)-1))
}
