//go:build debug && trace

package gles

import "github.com/spaghettifunk/gles3/internal/core"

const traceEnabled = true

func init() {
	core.SetLevel(core.DebugLevel)
}
