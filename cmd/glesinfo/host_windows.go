package main

import "github.com/spaghettifunk/gles3/platform"

type wglLoader struct {
	*platform.WGL
}

func (wglLoader) Name() string {
	return "WGL"
}

func openHost(egl bool) (hostLoader, error) {
	if egl {
		return nil, nil
	}
	w, err := platform.OpenWGL()
	if err != nil {
		return nil, err
	}
	return wglLoader{w}, nil
}
