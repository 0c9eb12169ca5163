//go:build debug

package gles

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestResolveRejectsMalformedNames(t *testing.T) {
	lookup := func(string) unsafe.Pointer { return nil }
	for _, name := range []string{"", "gl", "ClearColor", "glClear\x00Color"} {
		assert.Panics(t, func() { resolve([]string{name}, lookup) }, "%q", name)
	}
	assert.Panics(t, func() { resolve(nil, lookup) })
	assert.NotPanics(t, func() { resolve([]string{"glClear"}, lookup) })
}
