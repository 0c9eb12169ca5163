package core

import "sync/atomic"

// LookupMetrics counts host lookup traffic across every load operation in
// the process.
type LookupMetrics struct {
	lookups      atomic.Uint64
	rejected     atomic.Uint64
	fallbackHits atomic.Uint64
	resolved     atomic.Uint64
}

// LookupSnapshot is a point-in-time copy of LookupMetrics.
type LookupSnapshot struct {
	// Lookups is the number of host lookup invocations.
	Lookups uint64
	// Rejected counts lookups whose result was a null or sentinel address.
	Rejected uint64
	// Resolved counts entry points that were published.
	Resolved uint64
	// FallbackHits counts entry points bound through a vendor alias.
	FallbackHits uint64
}

var metrics LookupMetrics

func Metrics() *LookupMetrics {
	return &metrics
}

func (m *LookupMetrics) RecordLookup(accepted bool) {
	m.lookups.Add(1)
	if !accepted {
		m.rejected.Add(1)
	}
}

// RecordResolved notes a published entry; index is the candidate position
// that matched, 0 being the canonical name.
func (m *LookupMetrics) RecordResolved(index int) {
	m.resolved.Add(1)
	if index > 0 {
		m.fallbackHits.Add(1)
	}
}

func (m *LookupMetrics) Snapshot() LookupSnapshot {
	return LookupSnapshot{
		Lookups:      m.lookups.Load(),
		Rejected:     m.rejected.Load(),
		Resolved:     m.resolved.Load(),
		FallbackHits: m.fallbackHits.Load(),
	}
}

func (m *LookupMetrics) Reset() {
	m.lookups.Store(0)
	m.rejected.Store(0)
	m.resolved.Store(0)
	m.fallbackHits.Store(0)
}
