//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Test mg.Namespace

// The instrumentation envelopes are compiled in or out by build tags, so
// each combination is its own build.
var tagMatrix = []string{
	"",
	"debug",
	"debug trace",
	"debug error_check",
	"debug trace error_check",
}

// Runs the test suite once per build tag combination.
func (Test) All() error {
	for _, tags := range tagMatrix {
		if err := runTests(tags); err != nil {
			return err
		}
	}
	return nil
}

// Runs the test suite without build tags.
func (Test) Unit() error {
	return runTests("")
}

// Runs the test suite with the race detector.
func (Test) Race() error {
	fmt.Println("Running tests with -race...")
	_, err := executeCmd("go", withArgs("test", "-race", "./..."), withStream())
	return err
}

func runTests(tags string) error {
	args := []string{"test", "-count=1"}
	if tags != "" {
		args = append(args, "-tags", tags)
	}
	args = append(args, "./...")
	fmt.Printf("Running tests [tags=%q]...\n", tags)
	_, err := executeCmd("go", withArgs(args...), withStream())
	return err
}
