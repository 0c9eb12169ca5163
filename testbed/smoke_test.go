//go:build darwin || (linux && (amd64 || arm64))

package testbed

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gles3/gles"
)

var driverStrings = map[uint32][]byte{
	gles.VENDOR:                   []byte("Fake\x00"),
	gles.RENDERER:                 []byte("Fake Renderer\x00"),
	gles.VERSION:                  []byte("OpenGL ES 3.0 Fake\x00"),
	gles.SHADING_LANGUAGE_VERSION: []byte("OpenGL ES GLSL ES 3.00\x00"),
}

var (
	clearColor [4]float32
	clearMask  uint32
	errorQueue []uint32
)

var symbols = map[string]uintptr{
	"glGetString": purego.NewCallback(func(name uint32) *byte {
		if s, ok := driverStrings[name]; ok {
			return &s[0]
		}
		return nil
	}),
	"glClearColor": purego.NewCallback(func(r, g, b, a float32) {
		clearColor = [4]float32{r, g, b, a}
	}),
	"glClear": purego.NewCallback(func(mask uint32) {
		clearMask = mask
	}),
	"glGetError": purego.NewCallback(func() uint32 {
		if len(errorQueue) == 0 {
			return gles.NO_ERROR
		}
		code := errorQueue[0]
		errorQueue = errorQueue[1:]
		return code
	}),
}

func lookup(name string) unsafe.Pointer {
	addr := symbols[name]
	return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
}

func TestSmoke(t *testing.T) {
	_, err := Smoke(0, 0, 0, 1)
	require.ErrorIs(t, err, gles.ErrNotLoaded, "nothing is loaded yet")

	gles.LoadAll(lookup)
	errorQueue = []uint32{gles.INVALID_OPERATION}

	r, err := Smoke(0.25, 0.5, 0.75, 1)
	require.NoError(t, err)
	assert.Equal(t, "Fake", r.Vendor)
	assert.Equal(t, "Fake Renderer", r.Renderer)
	assert.Equal(t, "OpenGL ES 3.0 Fake", r.Version)
	assert.Equal(t, "OpenGL ES GLSL ES 3.00", r.ShadingLanguage)
	assert.Equal(t, []string{"INVALID_OPERATION"}, r.Errors)

	assert.Equal(t, [4]float32{0.25, 0.5, 0.75, 1}, clearColor)
	assert.Equal(t, uint32(gles.COLOR_BUFFER_BIT|gles.DEPTH_BUFFER_BIT), clearMask)
}

func TestSmokeBoundsErrorDrain(t *testing.T) {
	gles.LoadAll(lookup)
	errorQueue = make([]uint32, 100)
	for i := range errorQueue {
		errorQueue[i] = gles.OUT_OF_MEMORY
	}

	r, err := Smoke(0, 0, 0, 1)
	require.NoError(t, err)
	assert.Len(t, r.Errors, maxErrors)
}
