package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gles3/internal/core"
)

func TestDlopenFirstMissing(t *testing.T) {
	_, err := dlopenFirst([]string{"libdoes-not-exist.so.9"})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrLibraryNotFound)
	assert.Contains(t, err.Error(), "libdoes-not-exist.so.9")
}

func TestEGLLookup(t *testing.T) {
	e, err := OpenEGL()
	if err != nil {
		t.Skipf("no EGL on this host: %v", err)
	}
	defer e.Close()

	// Exported by every libGLESv2, with or without a current context.
	assert.NotNil(t, e.Lookup("glClear"))
}
