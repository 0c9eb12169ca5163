package gles

import (
	"errors"
	"fmt"
	"io"

	"github.com/spaghettifunk/gles3/internal/core"
)

// LoadStats describes host lookup traffic since process start.
type LoadStats = core.LookupSnapshot

// LoadAll resolves every entry point against lookup. Entries the driver
// does not export stay unloaded; LoadAll itself never fails.
//
// lookup must return real code addresses or values AddrOK rejects. Nothing
// is read from the returned addresses here, they are only stored.
func LoadAll(lookup LookupFunc) {
	clock := core.NewClock()
	clock.Start()
	loaded := 0
	for _, e := range entries[:] {
		if e.LoadWith(lookup) {
			loaded++
		}
	}
	clock.Update()
	core.LogDebug("resolved %d of %d entry points in %s", loaded, len(entries), clock.Elapsed())
}

// Entries returns every entry point in registry order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries[:])
	return out
}

// Missing returns the canonical names of the entry points that are not
// loaded.
func Missing() []string {
	var names []string
	for _, e := range entries[:] {
		if !e.IsLoaded() {
			names = append(names, e.Name())
		}
	}
	return names
}

// Require returns an error wrapping core.ErrNotLoaded for each of the given
// entries that is not loaded, or nil when all are.
func Require(required ...Entry) error {
	var errs []error
	for _, e := range required {
		if !e.IsLoaded() {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), ErrNotLoaded))
		}
	}
	return errors.Join(errs...)
}

// ErrNotLoaded is wrapped by the errors Require returns.
var ErrNotLoaded = core.ErrNotLoaded

func Stats() LoadStats {
	return core.Metrics().Snapshot()
}

// SetLogLevel sets the minimum level of the diagnostic sink. core.LogLevel
// is an alias of github.com/charmbracelet/log.Level, so callers pass
// charmbracelet/log levels such as log.DebugLevel.
func SetLogLevel(level core.LogLevel) {
	core.SetLevel(level)
}

// SetLogOutput redirects the diagnostic sink used by the trace and
// error-check envelopes and by the unresolved-call abort.
func SetLogOutput(w io.Writer) {
	core.SetOutput(w)
}
