//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Regenerates the entry-point table and shims from the registry.
func (Build) Generate() error {
	if _, err := executeCmd("go", withArgs("generate", "./gles"), withStream()); err != nil {
		return err
	}
	return goTidy()
}

// Builds glesinfo and glesgen into bin/.
func (Build) Tools() error {
	for _, tool := range []string{"glesinfo", "glesgen"} {
		fmt.Printf("Building %s...\n", tool)
		if _, err := executeCmd("go", withArgs("build", "-o", "bin/"+tool, "./cmd/"+tool)); err != nil {
			return err
		}
	}
	return nil
}
