package gles

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const abortEnv = "GLES_ABORT_CHILD"

// The child process calls an unloaded entry point; the parent checks that
// it terminated with a diagnostic naming that entry.
func TestUnloadedCallAborts(t *testing.T) {
	if os.Getenv(abortEnv) == "1" {
		resetAll()
		ActiveTexture(TEXTURE0)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestUnloadedCallAborts$")
	cmd.Env = append(os.Environ(), abortEnv+"=1")
	out, err := cmd.CombinedOutput()

	var exit *exec.ExitError
	require.ErrorAs(t, err, &exit, "child exited cleanly:\n%s", out)
	assert.NotEqual(t, 0, exit.ExitCode())
	assert.Contains(t, string(out), "glActiveTexture")
	assert.Contains(t, string(out), "before it was loaded")
}

func TestUnloadedCallAbortsAfterPartialLoad(t *testing.T) {
	if os.Getenv(abortEnv) == "2" {
		resetAll()
		LoadAll(lookupOf(nil))
		Clear(COLOR_BUFFER_BIT)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestUnloadedCallAbortsAfterPartialLoad$")
	cmd.Env = append(os.Environ(), abortEnv+"=2")
	out, err := cmd.CombinedOutput()

	require.Error(t, err)
	assert.Contains(t, string(out), "glClear")
}
