//go:build debug && trace && (darwin || (linux && (amd64 || arm64)))

package gles

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/gles3/internal/core"
)

func TestTraceRecordsCalls(t *testing.T) {
	loadDriver(t)
	var buf bytes.Buffer
	SetLogOutput(&buf)
	SetLogLevel(core.DebugLevel)
	t.Cleanup(func() { SetLogOutput(os.Stderr) })

	ClearColor(1, 1, 1, 1)
	Viewport(0, 0, 2, 2)

	calls := RecentCalls()
	assert.GreaterOrEqual(t, len(calls), 2)
	assert.Equal(t, []string{"glClearColor", "glViewport"}, calls[len(calls)-2:])
	assert.Contains(t, buf.String(), "glClearColor")
	assert.Contains(t, buf.String(), "glViewport")
}

func TestTraceKeepsBoundedHistory(t *testing.T) {
	loadDriver(t)
	for i := 0; i < recentCallCount+10; i++ {
		Viewport(0, 0, 1, 1)
	}
	assert.Len(t, RecentCalls(), recentCallCount)
}
