//go:build debug && error_check && (darwin || (linux && (amd64 || arm64)))

package gles

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(os.Stderr) })
	return &buf
}

func TestErrorCheckReportsPendingError(t *testing.T) {
	loadDriver(t)
	buf := captureLog(t)

	driver.errorQueue = []uint32{INVALID_ENUM}
	ClearColor(0, 0, 0, 1)

	out := buf.String()
	assert.Contains(t, out, "glClearColor")
	assert.Contains(t, out, "INVALID_ENUM")
	assert.Contains(t, out, "0x0500")
	assert.Empty(t, driver.errorQueue)
}

func TestErrorCheckSilentWithoutError(t *testing.T) {
	loadDriver(t)
	buf := captureLog(t)

	Viewport(0, 0, 1, 1)
	assert.NotContains(t, buf.String(), "glViewport(")
}

func TestGetErrorIsNotProbed(t *testing.T) {
	loadDriver(t)
	buf := captureLog(t)

	driver.errorQueue = []uint32{INVALID_OPERATION, OUT_OF_MEMORY}
	assert.Equal(t, Enum(INVALID_OPERATION), GetError())
	assert.Equal(t, []uint32{OUT_OF_MEMORY}, driver.errorQueue)
	assert.NotContains(t, buf.String(), "INVALID_OPERATION")
}

func TestErrorCheckSkippedWithoutGetError(t *testing.T) {
	resetAll()
	driver = fakeDriver{}
	assert.True(t, Procs.Viewport.LoadWith(driverLookup))
	assert.False(t, Procs.GetError.IsLoaded())
	buf := captureLog(t)

	assert.NotPanics(t, func() { Viewport(1, 2, 3, 4) })
	assert.Equal(t, [4]int32{1, 2, 3, 4}, driver.viewport)
	assert.NotContains(t, buf.String(), "glViewport(")
}
