package gles

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/gles3/internal/core"
)

// resolve asks lookup for each candidate in order and returns the first
// address AddrOK accepts. There is no caching.
func resolve(names []string, lookup LookupFunc) (uintptr, bool) {
	if debugEnabled && len(names) == 0 {
		panic("gles: empty candidate list")
	}
	m := core.Metrics()
	for i, name := range names {
		if debugEnabled {
			assertName(name)
		}
		addr := uintptr(lookup(name))
		ok := AddrOK(addr)
		m.RecordLookup(ok)
		if ok {
			m.RecordResolved(i)
			return addr, true
		}
	}
	return 0, false
}

func assertName(name string) {
	if !strings.HasPrefix(name, "gl") || len(name) < 3 || strings.IndexByte(name, 0) >= 0 {
		panic(fmt.Sprintf("gles: malformed candidate name %q", name))
	}
}
