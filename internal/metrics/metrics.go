package metrics

import (
	"sync"
	"time"
)

type sourceStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	fallbacks       int
	lastCallLatency time.Duration
}

// Recorder captures lightweight in-memory stats about feed fetches and roster
// mutations, mirroring them to OpenTelemetry instruments when configured.
type Recorder struct {
	mu        sync.Mutex
	stats     map[string]*sourceStats
	mutations map[string]int
	otel      *otelInstruments
}

// NewRecorder returns a Recorder without a telemetry backend; counters are
// still tracked in memory, which is enough for tests and readiness checks.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:     make(map[string]*sourceStats),
		mutations: make(map[string]int),
		otel:      otel,
	}
}

// RecordFeedAttempt increments counters for a feed fetch and stores the last
// observed latency.
func (r *Recorder) RecordFeedAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedAttempt(source, duration, err)
	}
}

// RecordRateLimit tracks that the upstream signalled too-many-requests.
func (r *Recorder) RecordRateLimit(source string) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	r.mu.Lock()
	stats.rateLimitHits++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(source)
	}
}

// RecordFallback tracks an activation of sample-data fallback mode.
func (r *Recorder) RecordFallback(source string) {
	if r == nil {
		return
	}

	stats := r.ensureStats(source)
	r.mu.Lock()
	stats.fallbacks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFallback(source)
	}
}

// RecordRosterMutation tracks a successful roster store mutation by operation
// name (create_team, add_player, ...).
func (r *Recorder) RecordRosterMutation(op string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.mutations[op]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRosterMutation(op)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the in-memory stats for one feed source.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	Fallbacks       int
	LastCallLatency time.Duration
}

// FeedSnapshot returns a copy of the current stats for the source.
func (r *Recorder) FeedSnapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		Fallbacks:       stats.fallbacks,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RosterMutations returns the number of recorded mutations for an operation.
func (r *Recorder) RosterMutations(op string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mutations[op]
}

func (r *Recorder) ensureStats(source string) *sourceStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[source]
	if !ok {
		stats = &sourceStats{}
		r.stats[source] = stats
	}
	return stats
}
