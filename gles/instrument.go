package gles

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spaghettifunk/gles3/internal/containers"
	"github.com/spaghettifunk/gles3/internal/core"
)

const recentCallCount = 32

var recent = struct {
	sync.Mutex
	calls *containers.RingQueue[string]
}{calls: containers.NewRingQueue[string](recentCallCount)}

func traceCall(name string) {
	recent.Lock()
	recent.calls.Push(name)
	recent.Unlock()
	core.LogDebug("%s", name)
}

// RecentCalls returns the names of the last traced calls, oldest first. It
// is always empty unless the package was built with the debug and trace tags.
func RecentCalls() []string {
	recent.Lock()
	defer recent.Unlock()
	return recent.calls.Items()
}

// checkError polls the GetError cell directly; going through the GetError
// shim would trace the probe as a user call.
func checkError(name string, args ...interface{}) {
	b := Procs.GetError.cell.Load()
	if b == nil {
		return
	}
	if code := b.fn(); code != NO_ERROR {
		core.LogError("%s(%s): %s (0x%04X)", name, formatArgs(args), ErrorName(code), code)
	}
}

func formatArgs(args []interface{}) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, ", ")
}

// ErrorName returns the symbolic name of a GetError code.
func ErrorName(code Enum) string {
	switch code {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("0x%04X", code)
}

func unresolved(name string) {
	if traceEnabled {
		if calls := RecentCalls(); len(calls) > 0 {
			core.LogError("last calls: %s", strings.Join(calls, ", "))
		}
	}
	core.LogFatal("%s called before it was loaded", name)
}
