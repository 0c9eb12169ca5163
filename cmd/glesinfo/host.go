package main

import "unsafe"

// hostLoader is the platform symbol loader used in front of
// glfw.GetProcAddress.
type hostLoader interface {
	Name() string
	Lookup(name string) unsafe.Pointer
	HasContext() bool
	Close() error
}
