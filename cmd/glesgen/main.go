// Command glesgen renders the entry-point table and dispatch shims of
// package gles from the registry.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/spaghettifunk/gles3/internal/core"
)

const embeddedSource = "internal/registry/gles30.toml"

var (
	registryFlag = &cli.StringFlag{
		Name:  "registry",
		Usage: "registry TOML file (default: the embedded GLES 3.0 table)",
	}
	outFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output directory of package gles",
		Value: ".",
	}
)

func main() {
	app := &cli.App{
		Name:  "glesgen",
		Usage: "generate the gles entry-point table and shims",
		Commands: []*cli.Command{
			{
				Name:   "generate",
				Usage:  "render procs_gen.go and shims_gen.go once",
				Flags:  []cli.Flag{registryFlag, outFlag},
				Action: generateAction,
			},
			{
				Name:   "watch",
				Usage:  "regenerate whenever the registry file changes",
				Flags:  []cli.Flag{registryFlag, outFlag},
				Action: watchAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		core.LogFatal("%s", err)
	}
}

func generateAction(ctx *cli.Context) error {
	reg, source, err := loadRegistry(ctx.String(registryFlag.Name))
	if err != nil {
		return err
	}
	if err := generate(reg, source, ctx.String(outFlag.Name)); err != nil {
		return err
	}
	core.LogInfo("generated %d entry points from %s", len(reg.Commands), source)
	return nil
}
