package core

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetLevel(InfoLevel)
	})

	SetLevel(InfoLevel)
	LogDebug("hidden %d", 1)
	LogError("glClear(%s): %s", "0x4000", "INVALID_VALUE")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "glClear(0x4000): INVALID_VALUE")
	assert.Contains(t, buf.String(), "gles")

	buf.Reset()
	SetLevel(DebugLevel)
	LogDebug("shown %d", 2)
	assert.Contains(t, buf.String(), "shown 2")
}
