package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gles3/internal/registry"
)

func TestNewCommandData(t *testing.T) {
	reg, err := registry.Default()
	require.NoError(t, err)

	c, ok := reg.Lookup("glClearColor")
	require.True(t, ok)
	cd, err := newCommandData(c)
	require.NoError(t, err)
	assert.Equal(t, "ClearColor", cd.GoName)
	assert.Equal(t, "func(Float, Float, Float, Float)", cd.FuncType)
	assert.Equal(t, "red, green, blue, alpha Float", cd.ParamList)
	assert.Equal(t, "red, green, blue, alpha", cd.ArgList)
	assert.Empty(t, cd.Result)
	assert.True(t, cd.Probe)

	c, _ = reg.Lookup("glShaderSource")
	cd, err = newCommandData(c)
	require.NoError(t, err)
	assert.Equal(t, "shader Uint, count Sizei, xstring **Char, length *Int", cd.ParamList)

	c, _ = reg.Lookup("glMapBufferRange")
	cd, err = newCommandData(c)
	require.NoError(t, err)
	assert.Equal(t, "func(Enum, Intptr, Sizeiptr, Bitfield) unsafe.Pointer", cd.FuncType)
	assert.Equal(t, `"glMapBufferRange", "glMapBufferRangeEXT"`, cd.NameList)

	c, _ = reg.Lookup("glGetError")
	cd, err = newCommandData(c)
	require.NoError(t, err)
	assert.False(t, cd.Probe)
	assert.Equal(t, "Enum", cd.Result)
}

// The checked-in files must match what the generator renders from the
// embedded registry.
func TestGeneratedFilesUpToDate(t *testing.T) {
	reg, err := registry.Default()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, generate(reg, embeddedSource, dir))

	for _, name := range []string{"procs_gen.go", "shims_gen.go"} {
		want, err := os.ReadFile(filepath.Join("..", "..", "gles", name))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got), "%s is stale, run mage generate", name)
	}
}

func TestLoadRegistrySource(t *testing.T) {
	reg, source, err := loadRegistry("")
	require.NoError(t, err)
	assert.Equal(t, embeddedSource, source)
	assert.NotEmpty(t, reg.Commands)

	_, source, err = loadRegistry("../../internal/registry/gles30.toml")
	require.NoError(t, err)
	assert.Equal(t, embeddedSource, source)

	_, _, err = loadRegistry("testdata/missing.toml")
	assert.Error(t, err)
}
