package main

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gles3/gles"
	"github.com/spaghettifunk/gles3/testbed"
)

func fakeLookup(table map[string]uintptr) gles.LookupFunc {
	return func(name string) unsafe.Pointer {
		addr := table[name]
		return *(*unsafe.Pointer)(unsafe.Pointer(&addr))
	}
}

func TestCollectAndRender(t *testing.T) {
	lookup := fakeLookup(map[string]uintptr{
		"glClearColor":         0x10000,
		"glBindVertexArrayOES": 0x10010,
	})
	entries := []gles.Entry{&gles.Procs.ClearColor, &gles.Procs.BindVertexArray, &gles.Procs.TexStorage2D}
	for _, e := range entries {
		e.LoadWith(lookup)
	}

	rows := collect(entries, lookup, false)
	require.Len(t, rows, 3)
	assert.Equal(t, row{name: "glClearColor", loaded: true, addr: 0x10000, resolved: "glClearColor"}, rows[0])
	assert.Equal(t, "glBindVertexArrayOES", rows[1].resolved)
	assert.False(t, rows[2].loaded)

	missing := collect(entries, lookup, true)
	require.Len(t, missing, 1)
	assert.Equal(t, "glTexStorage2D", missing[0].name)

	var buf bytes.Buffer
	renderTable(&buf, rows)
	out := buf.String()
	assert.Contains(t, out, "ENTRY POINT")
	assert.Contains(t, out, "glClearColor")
	assert.Contains(t, out, "0x10010")
	assert.Contains(t, out, "glBindVertexArrayOES")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printSummary(&buf, gles.LoadStats{Lookups: 10, Rejected: 7, Resolved: 3, FallbackHits: 1}, 246, 243)
	assert.Contains(t, buf.String(), "3 of 246 entry points loaded, 1 through vendor aliases")
	assert.Contains(t, buf.String(), "10 lookups, 7 rejected")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	printReport(&buf, &testbed.Report{Vendor: "Mesa", Version: "OpenGL ES 3.0", Errors: []string{"INVALID_ENUM"}})
	assert.Contains(t, buf.String(), "Vendor:   Mesa")
	assert.Contains(t, buf.String(), "[INVALID_ENUM]")
}
