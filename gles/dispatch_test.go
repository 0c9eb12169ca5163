//go:build darwin || (linux && (amd64 || arm64))

package gles

import (
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDriver stands in for a GLES implementation. Its functions are real
// C-ABI callbacks, so dispatch goes through the same trampolines a driver
// would.
type fakeDriver struct {
	clearColor   [4]float32
	boundArray   uint32
	viewport     [4]int32
	lastShader   uint32
	nextBuffer   uint32
	errorQueue   []uint32
	mapped       [64]byte
	enabledCap   uint32
	locationName string
}

var driver fakeDriver

var driverSymbols = map[string]uintptr{
	"glClearColor": purego.NewCallback(func(r, g, b, a float32) {
		driver.clearColor = [4]float32{r, g, b, a}
	}),
	"glBindVertexArrayOES": purego.NewCallback(func(array uint32) {
		driver.boundArray = array
	}),
	"glViewport": purego.NewCallback(func(x, y, w, h int32) {
		driver.viewport = [4]int32{x, y, w, h}
	}),
	"glCreateShader": purego.NewCallback(func(kind uint32) uint32 {
		driver.lastShader = kind
		return 7
	}),
	"glGenBuffers": purego.NewCallback(func(n int32, buffers *uint32) {
		out := unsafe.Slice(buffers, n)
		for i := range out {
			driver.nextBuffer++
			out[i] = driver.nextBuffer
		}
	}),
	"glGetError": purego.NewCallback(func() uint32 {
		if len(driver.errorQueue) == 0 {
			return NO_ERROR
		}
		code := driver.errorQueue[0]
		driver.errorQueue = driver.errorQueue[1:]
		return code
	}),
	"glMapBufferRange": purego.NewCallback(func(target uint32, offset, length int, access uint32) unsafe.Pointer {
		return unsafe.Pointer(&driver.mapped[offset])
	}),
	"glIsEnabled": purego.NewCallback(func(c uint32) uint8 {
		if c == driver.enabledCap {
			return TRUE
		}
		return FALSE
	}),
	"glGetUniformLocation": purego.NewCallback(func(program uint32, name *byte) int32 {
		driver.locationName = GoStr(name)
		return -1
	}),
}

func driverLookup(name string) unsafe.Pointer {
	addr, ok := driverSymbols[name]
	if !ok {
		return nil
	}
	return addrPointer(addr)
}

func loadDriver(t *testing.T) {
	t.Helper()
	resetAll()
	driver = fakeDriver{}
	LoadAll(driverLookup)
}

func TestDispatchForwardsFloats(t *testing.T) {
	loadDriver(t)
	require.True(t, Procs.ClearColor.IsLoaded())

	ClearColor(0.1, 0.2, 0.3, 1.0)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1.0}, driver.clearColor)
}

func TestDispatchThroughVendorAlias(t *testing.T) {
	loadDriver(t)
	require.True(t, Procs.BindVertexArray.IsLoaded())

	BindVertexArray(42)
	assert.Equal(t, uint32(42), driver.boundArray)
}

func TestDispatchForwardsSignedIntegers(t *testing.T) {
	loadDriver(t)
	Viewport(-5, 10, 640, 480)
	assert.Equal(t, [4]int32{-5, 10, 640, 480}, driver.viewport)
}

func TestDispatchReturnsValues(t *testing.T) {
	loadDriver(t)

	assert.Equal(t, Uint(7), CreateShader(VERTEX_SHADER))
	assert.Equal(t, uint32(VERTEX_SHADER), driver.lastShader)

	driver.enabledCap = BLEND
	assert.Equal(t, Boolean(TRUE), IsEnabled(BLEND))
	assert.Equal(t, Boolean(FALSE), IsEnabled(DEPTH_TEST))

	name := Str("u_mvp")
	assert.Equal(t, Int(-1), GetUniformLocation(3, name))
	assert.Equal(t, "u_mvp", driver.locationName)
}

func TestDispatchForwardsPointersVerbatim(t *testing.T) {
	loadDriver(t)

	buffers := make([]Uint, 3)
	GenBuffers(Sizei(len(buffers)), &buffers[0])
	assert.Equal(t, []Uint{1, 2, 3}, buffers)

	p := MapBufferRange(ARRAY_BUFFER, 16, 8, MAP_WRITE_BIT)
	assert.Equal(t, unsafe.Pointer(&driver.mapped[16]), p)
}

func TestGetErrorDrainsQueue(t *testing.T) {
	loadDriver(t)
	driver.errorQueue = []uint32{INVALID_ENUM, INVALID_VALUE}

	assert.Equal(t, Enum(INVALID_ENUM), GetError())
	assert.Equal(t, Enum(INVALID_VALUE), GetError())
	assert.Equal(t, Enum(NO_ERROR), GetError())
}

func TestUnexportedEntryStaysUnloaded(t *testing.T) {
	loadDriver(t)
	assert.False(t, Procs.TexStorage3D.IsLoaded())
	assert.Contains(t, Missing(), "glTexStorage3D")
}

// maxDispatchAllocs bounds the heap allocations of one plain dispatch. The
// purego trampoline goes through reflect.MakeFunc, which allocates for the
// argument and result values.
const maxDispatchAllocs = 4

func TestDispatchAllocations(t *testing.T) {
	if traceEnabled || errorCheckEnabled {
		t.Skip("envelopes allocate")
	}
	loadDriver(t)

	allocs := testing.AllocsPerRun(100, func() {
		Viewport(0, 0, 640, 480)
	})
	assert.LessOrEqual(t, allocs, float64(maxDispatchAllocs))
}

func BenchmarkDispatchViewport(b *testing.B) {
	resetAll()
	LoadAll(driverLookup)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Viewport(0, 0, 640, 480)
	}
}

func BenchmarkDispatchClearColor(b *testing.B) {
	resetAll()
	LoadAll(driverLookup)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		ClearColor(0.1, 0.2, 0.3, 1)
	}
}
