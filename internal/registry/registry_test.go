package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gles3/internal/core"
)

func TestDefaultRegistry(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "gles2", r.API)
	assert.Equal(t, "3.0", r.Version)
	assert.Len(t, r.Commands, 246)

	for _, name := range []string{"glActiveTexture", "glClearColor", "glDrawArrays", "glGetError", "glTexStorage3D"} {
		_, ok := r.Lookup(name)
		assert.True(t, ok, name)
	}
}

func TestDefaultFallbacks(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	cases := map[string][]string{
		"glActiveTexture":       {"glActiveTexture", "glActiveTextureARB"},
		"glDrawArraysInstanced": {"glDrawArraysInstanced", "glDrawArraysInstancedANGLE", "glDrawArraysInstancedARB", "glDrawArraysInstancedEXT", "glDrawArraysInstancedNV"},
		"glMapBufferRange":      {"glMapBufferRange", "glMapBufferRangeEXT"},
		"glBindVertexArray":     {"glBindVertexArray", "glBindVertexArrayOES"},
		"glGetError":            {"glGetError"},
	}
	for name, want := range cases {
		c, ok := r.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, c.Names(), name)
	}
}

func TestDefaultSignatures(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)

	c, _ := r.Lookup("glClearColor")
	require.Len(t, c.Params, 4)
	for _, p := range c.Params {
		assert.Equal(t, "GLfloat", p.Type)
	}
	assert.Equal(t, "void", c.ReturnType())

	c, _ = r.Lookup("glGetString")
	assert.Equal(t, "const GLubyte *", c.ReturnType())
	assert.Equal(t, "GetString", c.GoName())
}

func TestGoType(t *testing.T) {
	cases := map[string]string{
		"void":                 "",
		"GLenum":               "Enum",
		"const GLuint *":       "*Uint",
		"GLchar *":             "*Char",
		"const GLchar *const*": "**Char",
		"const void *":         "unsafe.Pointer",
		"void **":              "*unsafe.Pointer",
		"GLsync":               "Sync",
		"const GLubyte *":      "*Ubyte",
	}
	for in, want := range cases {
		got, err := GoType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := GoType("GLhalf")
	assert.Error(t, err)
}

func TestGoParamName(t *testing.T) {
	assert.Equal(t, "xtype", GoParamName("type"))
	assert.Equal(t, "xstring", GoParamName("string"))
	assert.Equal(t, "target", GoParamName("target"))
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"empty": `api = "gles2"`,
		"prefix": `
[[command]]
name = "ClearColor"`,
		"duplicate": `
[[command]]
name = "glFlush"
[[command]]
name = "glFlush"`,
		"suffix": `
[[command]]
name = "glFlush"
fallbacks = ["glFlushXYZ"]`,
		"type": `
[[command]]
name = "glFlush"
params = [{ name = "x", type = "GLhalf" }]`,
		"syntax": `[[command`,
	}
	for name, doc := range cases {
		_, err := Parse([]byte(doc))
		assert.ErrorIs(t, err, core.ErrInvalidRegistry, name)
	}
}

func TestEveryCandidateIsWellFormed(t *testing.T) {
	r, err := Default()
	require.NoError(t, err)
	for _, c := range r.Commands {
		names := c.Names()
		assert.Equal(t, c.Name, names[0])
		for _, n := range names {
			assert.True(t, strings.HasPrefix(n, "gl"), n)
			assert.NotContains(t, n, "\x00")
		}
	}
}
