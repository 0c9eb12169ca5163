// Package testbed exercises a handful of entry points against whatever
// context is current, to check that loading and dispatch work end to end.
package testbed

import (
	"fmt"

	"github.com/spaghettifunk/gles3/gles"
	"github.com/spaghettifunk/gles3/internal/core"
)

// Report is what Smoke observed.
type Report struct {
	Vendor          string
	Renderer        string
	Version         string
	ShadingLanguage string
	// Errors holds the symbolic names of the error codes drained after the
	// clear, in the order GetError returned them.
	Errors []string
}

// maxErrors bounds the GetError drain; a broken driver can keep returning
// the same code.
const maxErrors = 16

// Smoke queries the driver strings, clears the framebuffer and drains the
// error queue. The entry points it needs must be loaded.
func Smoke(red, green, blue, alpha float32) (*Report, error) {
	if err := gles.Require(
		&gles.Procs.GetString,
		&gles.Procs.ClearColor,
		&gles.Procs.Clear,
		&gles.Procs.GetError,
	); err != nil {
		return nil, fmt.Errorf("smoke test: %w", err)
	}

	r := &Report{
		Vendor:          gles.GoStr(gles.GetString(gles.VENDOR)),
		Renderer:        gles.GoStr(gles.GetString(gles.RENDERER)),
		Version:         gles.GoStr(gles.GetString(gles.VERSION)),
		ShadingLanguage: gles.GoStr(gles.GetString(gles.SHADING_LANGUAGE_VERSION)),
	}

	gles.ClearColor(red, green, blue, alpha)
	gles.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)

	for i := 0; i < maxErrors; i++ {
		code := gles.GetError()
		if code == gles.NO_ERROR {
			break
		}
		r.Errors = append(r.Errors, gles.ErrorName(code))
	}
	if len(r.Errors) > 0 {
		core.LogWarn("smoke test left errors: %v", r.Errors)
	}
	return r, nil
}
