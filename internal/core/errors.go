package core

import (
	"errors"
)

var (
	ErrNotLoaded       = errors.New("entry point not loaded")
	ErrLibraryNotFound = errors.New("library not found")
	ErrInvalidRegistry = errors.New("invalid registry")
	ErrNoContext       = errors.New("no current GL context")
)
