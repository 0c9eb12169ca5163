package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenLookup(t *testing.T) {
	w, err := Open(Config{Title: "window test", Width: 16, Height: 16})
	if err != nil {
		t.Skipf("no GLES context on this host: %v", err)
	}
	defer w.Close()

	assert.NotNil(t, w.Lookup("glClear"))
	assert.NotNil(t, w.Lookup("glGetError"))
}
