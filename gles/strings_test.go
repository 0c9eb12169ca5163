package gles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoStr(t *testing.T) {
	b := []Ubyte("OpenGL ES 3.0 Mesa\x00trailing")
	assert.Equal(t, "OpenGL ES 3.0 Mesa", GoStr(&b[0]))
	assert.Equal(t, "", GoStr(nil))

	empty := []Ubyte{0}
	assert.Equal(t, "", GoStr(&empty[0]))
}

func TestStr(t *testing.T) {
	assert.Equal(t, "u_mvp", GoStr(Str("u_mvp")))
	assert.Equal(t, "u_mvp", GoStr(Str("u_mvp\x00")))
	assert.Equal(t, "", GoStr(Str("")))
}
