package gles

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/gles3/internal/registry"
)

func TestTableMatchesRegistry(t *testing.T) {
	reg, err := registry.Default()
	require.NoError(t, err)
	require.Len(t, entries, len(reg.Commands))

	for i, c := range reg.Commands {
		assert.Equal(t, c.Names(), entries[i].Names(), c.Name)
		assert.Equal(t, c.Name, entries[i].Name())
	}
}

func TestFreshTableIsUnloaded(t *testing.T) {
	resetAll()
	assert.False(t, Procs.ActiveTexture.IsLoaded())
	for _, e := range Entries() {
		assert.False(t, e.IsLoaded(), e.Name())
		assert.Zero(t, e.Addr(), e.Name())
	}
	assert.Len(t, Missing(), len(entries))
}

func TestLoadAllNullLookup(t *testing.T) {
	resetAll()
	LoadAll(func(string) unsafe.Pointer { return nil })
	for _, e := range Entries() {
		assert.False(t, e.IsLoaded(), e.Name())
	}
}

func TestLoadAllRejectsSentinels(t *testing.T) {
	for _, sentinel := range []uintptr{1, 2, 3, 7, ^uintptr(0)} {
		resetAll()
		LoadAll(func(string) unsafe.Pointer { return addrPointer(sentinel) })
		for _, e := range Entries() {
			require.False(t, e.IsLoaded(), "%s with sentinel %#x", e.Name(), sentinel)
		}
	}
	stats := Stats()
	assert.Equal(t, stats.Lookups, stats.Rejected)
	assert.Zero(t, stats.Resolved)
}

func TestLoadAllCanonicalOnly(t *testing.T) {
	resetAll()
	addr := fakeAddr(1)
	LoadAll(lookupOf(map[string]unsafe.Pointer{"glClearColor": addr}))

	assert.True(t, Procs.ClearColor.IsLoaded())
	assert.Equal(t, uintptr(addr), Procs.ClearColor.Addr())
	for _, e := range Entries() {
		if e.Name() != "glClearColor" {
			assert.False(t, e.IsLoaded(), e.Name())
		}
	}
	assert.Len(t, Missing(), len(entries)-1)
}

func TestLoadWithFallbackOnly(t *testing.T) {
	resetAll()
	addr := fakeAddr(2)
	ok := Procs.BindVertexArray.LoadWith(lookupOf(map[string]unsafe.Pointer{"glBindVertexArrayOES": addr}))

	assert.True(t, ok)
	assert.True(t, Procs.BindVertexArray.IsLoaded())
	assert.Equal(t, uintptr(addr), Procs.BindVertexArray.Addr())
	assert.Equal(t, uint64(1), Stats().FallbackHits)
}

func TestLoadWithFirstMatchWins(t *testing.T) {
	resetAll()
	canonical, alias := fakeAddr(3), fakeAddr(4)
	Procs.DrawArraysInstanced.LoadWith(lookupOf(map[string]unsafe.Pointer{
		"glDrawArraysInstanced":    canonical,
		"glDrawArraysInstancedEXT": alias,
	}))
	assert.Equal(t, uintptr(canonical), Procs.DrawArraysInstanced.Addr())
	assert.Zero(t, Stats().FallbackHits)
}

func TestLoadWithTriesCandidatesInOrder(t *testing.T) {
	resetAll()
	var asked []string
	ok := Procs.DrawArraysInstanced.LoadWith(func(name string) unsafe.Pointer {
		asked = append(asked, name)
		return nil
	})
	assert.False(t, ok)
	assert.Equal(t, []string{
		"glDrawArraysInstanced",
		"glDrawArraysInstancedANGLE",
		"glDrawArraysInstancedARB",
		"glDrawArraysInstancedEXT",
		"glDrawArraysInstancedNV",
	}, asked)

	asked = nil
	Procs.GetError.LoadWith(func(name string) unsafe.Pointer {
		asked = append(asked, name)
		return nil
	})
	assert.Equal(t, []string{"glGetError"}, asked)
}

func TestLoadWithStopsAtFirstAccepted(t *testing.T) {
	resetAll()
	calls := 0
	Procs.ActiveTexture.LoadWith(func(name string) unsafe.Pointer {
		calls++
		return fakeAddr(5)
	})
	assert.Equal(t, 1, calls)
}

func TestReloadIsIdempotent(t *testing.T) {
	resetAll()
	table := make(map[string]unsafe.Pointer)
	for i, e := range Entries() {
		table[e.Name()] = fakeAddr(100 + i)
	}
	LoadAll(lookupOf(table))
	first := make([]uintptr, len(entries))
	clearColor := Procs.ClearColor.cell.Load()
	for i, e := range Entries() {
		first[i] = e.Addr()
		require.True(t, e.IsLoaded(), e.Name())
	}

	LoadAll(lookupOf(table))
	for i, e := range Entries() {
		assert.Equal(t, first[i], e.Addr(), e.Name())
	}
	assert.Same(t, clearColor, Procs.ClearColor.cell.Load())
	assert.Empty(t, Missing())
}

func TestReloadMissKeepsCell(t *testing.T) {
	resetAll()
	addr := fakeAddr(6)
	require.True(t, Procs.Viewport.LoadWith(lookupOf(map[string]unsafe.Pointer{"glViewport": addr})))

	assert.False(t, Procs.Viewport.LoadWith(func(string) unsafe.Pointer { return nil }))
	assert.True(t, Procs.Viewport.IsLoaded())
	assert.Equal(t, uintptr(addr), Procs.Viewport.Addr())
}

func TestReloadReplacesWithNewAddress(t *testing.T) {
	resetAll()
	first, second := fakeAddr(7), fakeAddr(8)
	Procs.Viewport.LoadWith(lookupOf(map[string]unsafe.Pointer{"glViewport": first}))
	Procs.Viewport.LoadWith(lookupOf(map[string]unsafe.Pointer{"glViewport": second}))
	assert.Equal(t, uintptr(second), Procs.Viewport.Addr())
}

func TestRequire(t *testing.T) {
	resetAll()
	Procs.Clear.LoadWith(lookupOf(map[string]unsafe.Pointer{"glClear": fakeAddr(9)}))

	assert.NoError(t, Require(&Procs.Clear))

	err := Require(&Procs.Clear, &Procs.TexStorage2D, &Procs.FenceSync)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Contains(t, err.Error(), "glTexStorage2D")
	assert.Contains(t, err.Error(), "glFenceSync")
	assert.NotContains(t, err.Error(), "glClear:")
}

func TestNamesReturnsCopy(t *testing.T) {
	names := Procs.ActiveTexture.Names()
	names[0] = "changed"
	assert.Equal(t, "glActiveTexture", Procs.ActiveTexture.Name())
}

func TestConcurrentLoadAndQuery(t *testing.T) {
	resetAll()
	table := make(map[string]unsafe.Pointer)
	for i, e := range Entries() {
		table[e.Name()] = fakeAddr(1000 + i)
	}
	lookup := lookupOf(table)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			LoadAll(lookup)
		}()
		go func() {
			defer wg.Done()
			for _, e := range Entries() {
				if e.IsLoaded() {
					assert.Equal(t, uintptr(table[e.Name()]), e.Addr())
				}
			}
		}()
	}
	wg.Wait()

	for _, e := range Entries() {
		assert.Equal(t, uintptr(table[e.Name()]), e.Addr(), e.Name())
	}
}

func TestConcurrentSentinelLoad(t *testing.T) {
	resetAll()
	var wg sync.WaitGroup
	for _, sentinel := range []uintptr{1, 3, ^uintptr(0)} {
		wg.Add(1)
		go func(sentinel uintptr) {
			defer wg.Done()
			LoadAll(func(string) unsafe.Pointer { return addrPointer(sentinel) })
		}(sentinel)
	}
	wg.Wait()

	assert.Len(t, Missing(), len(entries))
	stats := Stats()
	assert.Equal(t, stats.Lookups, stats.Rejected)
}
