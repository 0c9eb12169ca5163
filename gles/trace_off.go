//go:build !debug || !trace

package gles

const traceEnabled = false
