package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupMetrics(t *testing.T) {
	var m LookupMetrics
	m.RecordLookup(false)
	m.RecordLookup(true)
	m.RecordResolved(0)
	m.RecordLookup(false)
	m.RecordLookup(true)
	m.RecordResolved(1)

	assert.Equal(t, LookupSnapshot{Lookups: 4, Rejected: 2, Resolved: 2, FallbackHits: 1}, m.Snapshot())

	m.Reset()
	assert.Equal(t, LookupSnapshot{}, m.Snapshot())
}

func TestClock(t *testing.T) {
	c := NewClock()
	c.Update()
	assert.Zero(t, c.Elapsed())

	c.Start()
	c.Update()
	assert.GreaterOrEqual(t, c.Elapsed().Nanoseconds(), int64(0))

	c.Stop()
	before := c.Elapsed()
	c.Update()
	assert.Equal(t, before, c.Elapsed())
}
