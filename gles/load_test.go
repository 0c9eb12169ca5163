package gles

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevelTakesCharmLevels(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() {
		SetLogOutput(os.Stderr)
		if traceEnabled {
			SetLogLevel(log.DebugLevel)
		} else {
			SetLogLevel(log.InfoLevel)
		}
	})

	resetAll()
	SetLogLevel(log.InfoLevel)
	LoadAll(lookupOf(nil))
	assert.NotContains(t, buf.String(), "entry points")

	SetLogLevel(log.DebugLevel)
	LoadAll(lookupOf(nil))
	assert.Contains(t, buf.String(), "resolved 0 of 246 entry points")
}
