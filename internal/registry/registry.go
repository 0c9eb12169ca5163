// Package registry holds the OpenGL ES 3.0 entry-point table used to
// generate package gles: canonical names, vendor fallbacks and C signatures.
package registry

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/slices"

	"github.com/spaghettifunk/gles3/internal/core"
)

//go:embed gles30.toml
var gles30 []byte

// MaxParams is the largest parameter count the purego trampolines accept.
const MaxParams = 15

// VendorSuffixes are the suffixes a fallback name may carry.
var VendorSuffixes = []string{"ARB", "EXT", "NV", "OES", "APPLE", "ANGLE", "ATI", "INGR"}

type Registry struct {
	API      string    `toml:"api"`
	Version  string    `toml:"version"`
	Profile  string    `toml:"profile"`
	Commands []Command `toml:"command"`
}

type Command struct {
	Name      string   `toml:"name"`
	Return    string   `toml:"return"`
	Fallbacks []string `toml:"fallbacks"`
	Params    []Param  `toml:"params"`
}

type Param struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
}

// Default returns the embedded GLES 3.0 table.
func Default() (*Registry, error) {
	return Parse(gles30)
}

func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates a registry document.
func Parse(data []byte) (*Registry, error) {
	var r Registry
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", core.ErrInvalidRegistry, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

// Validate checks the invariants the loader relies on: canonical names
// start with "gl" and are unique, every fallback carries a vendor suffix,
// and every type maps to Go.
func (r *Registry) Validate() error {
	if len(r.Commands) == 0 {
		return fmt.Errorf("%w: no commands", core.ErrInvalidRegistry)
	}
	seen := make(map[string]bool, len(r.Commands))
	for _, c := range r.Commands {
		if !strings.HasPrefix(c.Name, "gl") || len(c.Name) < 3 {
			return fmt.Errorf("%w: bad command name %q", core.ErrInvalidRegistry, c.Name)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate command %s", core.ErrInvalidRegistry, c.Name)
		}
		seen[c.Name] = true
		for i, f := range c.Fallbacks {
			if !strings.HasPrefix(f, "gl") || !hasVendorSuffix(f) {
				return fmt.Errorf("%w: %s: fallback %q has no vendor suffix", core.ErrInvalidRegistry, c.Name, f)
			}
			if f == c.Name || slices.Contains(c.Fallbacks[i+1:], f) {
				return fmt.Errorf("%w: %s: repeated candidate %q", core.ErrInvalidRegistry, c.Name, f)
			}
		}
		if len(c.Params) > MaxParams {
			return fmt.Errorf("%w: %s has %d parameters", core.ErrInvalidRegistry, c.Name, len(c.Params))
		}
		if _, err := GoType(c.ReturnType()); err != nil {
			return fmt.Errorf("%w: %s: %v", core.ErrInvalidRegistry, c.Name, err)
		}
		for _, p := range c.Params {
			if p.Name == "" {
				return fmt.Errorf("%w: %s: unnamed parameter", core.ErrInvalidRegistry, c.Name)
			}
			if t, err := GoType(p.Type); err != nil || t == "" {
				return fmt.Errorf("%w: %s: parameter %s has type %q", core.ErrInvalidRegistry, c.Name, p.Name, p.Type)
			}
		}
	}
	return nil
}

// Lookup returns the command with the given canonical name.
func (r *Registry) Lookup(name string) (Command, bool) {
	i := slices.IndexFunc(r.Commands, func(c Command) bool { return c.Name == name })
	if i < 0 {
		return Command{}, false
	}
	return r.Commands[i], true
}

func hasVendorSuffix(name string) bool {
	return slices.ContainsFunc(VendorSuffixes, func(s string) bool {
		return strings.HasSuffix(name, s)
	})
}

// GoName is the exported Go identifier: the canonical name without "gl".
func (c Command) GoName() string {
	return strings.TrimPrefix(c.Name, "gl")
}

// Names returns the candidate list, canonical first.
func (c Command) Names() []string {
	return append([]string{c.Name}, c.Fallbacks...)
}

func (c Command) ReturnType() string {
	if c.Return == "" {
		return "void"
	}
	return c.Return
}
