//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Prints the entry point report for the native context.
func (Run) Info() error {
	fmt.Println("Run glesinfo...")
	_, err := executeCmd("go", withArgs("run", "./cmd/glesinfo"), withStream())
	return err
}

// Prints the entry point report for an EGL context, with tracing.
func (Run) InfoEGL() error {
	fmt.Println("Run glesinfo over EGL...")
	_, err := executeCmd("go", withArgs("run", "-tags", "debug trace error_check", "./cmd/glesinfo", "--egl", "-v"), withStream())
	return err
}

// Regenerates the shims whenever the registry changes.
func (Run) Watch() error {
	mg.Deps(Build.Generate)
	_, err := executeCmd("go", withArgs("run", "../cmd/glesgen", "watch", "-registry", "../internal/registry/gles30.toml"), withDir("gles"), withStream())
	return err
}
