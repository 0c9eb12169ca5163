package main

import (
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/gles3/internal/registry"
)

// loadRegistry returns the registry and the path named in the generated
// header. The in-tree registry is always named by its module-relative path
// so output does not depend on the working directory.
func loadRegistry(path string) (*registry.Registry, string, error) {
	if path == "" {
		reg, err := registry.Default()
		return reg, embeddedSource, err
	}
	source := filepath.ToSlash(filepath.Clean(path))
	if strings.HasSuffix(source, embeddedSource) {
		source = embeddedSource
	}
	reg, err := registry.Load(path)
	return reg, source, err
}
