//go:build debug && error_check

package gles

const errorCheckEnabled = true
