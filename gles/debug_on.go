//go:build debug

package gles

const debugEnabled = true
