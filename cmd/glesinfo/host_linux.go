package main

import "github.com/spaghettifunk/gles3/platform"

type eglLoader struct {
	*platform.EGL
}

func (eglLoader) Name() string {
	return "EGL"
}

// openHost returns the EGL loader when the context was created through EGL.
// A GLX context cannot be queried through eglGetProcAddress.
func openHost(egl bool) (hostLoader, error) {
	if !egl {
		return nil, nil
	}
	e, err := platform.OpenEGL()
	if err != nil {
		return nil, err
	}
	return eglLoader{e}, nil
}
