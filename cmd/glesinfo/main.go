// Command glesinfo opens an OpenGL ES 3.0 context, loads every entry point
// and prints which of them the driver provides.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/spaghettifunk/gles3/gles"
	"github.com/spaghettifunk/gles3/internal/core"
	"github.com/spaghettifunk/gles3/platform"
	"github.com/spaghettifunk/gles3/platform/window"
	"github.com/spaghettifunk/gles3/testbed"
)

var (
	eglFlag = &cli.BoolFlag{
		Name:  "egl",
		Usage: "create the context through EGL and resolve through eglGetProcAddress first",
	}
	missingFlag = &cli.BoolFlag{
		Name:  "missing",
		Usage: "only list entry points the driver does not provide",
	}
	smokeFlag = &cli.BoolFlag{
		Name:  "smoke",
		Usage: "clear the framebuffer and drain GetError after loading",
		Value: true,
	}
	verboseFlag = &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "log at debug level",
	}
)

func main() {
	app := &cli.App{
		Name:   "glesinfo",
		Usage:  "report OpenGL ES 3.0 entry point availability",
		Flags:  []cli.Flag{eglFlag, missingFlag, smokeFlag, verboseFlag},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		core.LogFatal("%s", err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Bool(verboseFlag.Name) {
		gles.SetLogLevel(core.DebugLevel)
	}

	w, err := window.Open(window.Config{
		Title:  "glesinfo",
		Width:  64,
		Height: 64,
		EGL:    ctx.Bool(eglFlag.Name),
	})
	if err != nil {
		return err
	}
	defer w.Close()

	host, err := openHost(ctx.Bool(eglFlag.Name))
	if err != nil {
		core.LogWarn("host loader unavailable, using glfw only: %s", err)
	}
	lookup := gles.LookupFunc(w.Lookup)
	if host != nil {
		defer host.Close()
		if !host.HasContext() {
			return fmt.Errorf("%s loader: %w", host.Name(), core.ErrNoContext)
		}
		lookup = platform.Chain(host.Lookup, w.Lookup)
	}

	gles.LoadAll(lookup)

	if ctx.Bool(smokeFlag.Name) {
		report, err := testbed.Smoke(0, 0, 0, 1)
		if err != nil {
			return err
		}
		printReport(os.Stdout, report)
	}

	rows := collect(gles.Entries(), lookup, ctx.Bool(missingFlag.Name))
	renderTable(os.Stdout, rows)
	printSummary(os.Stdout, gles.Stats(), len(gles.Entries()), len(gles.Missing()))
	return nil
}
