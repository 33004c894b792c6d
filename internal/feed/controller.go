package feed

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"roster-service/internal/domain/players"
	"roster-service/internal/logging"
	"roster-service/internal/metrics"
	"roster-service/internal/providers"
)

// State is the feed controller's lifecycle state.
type State string

const (
	// StateIdle means more pages may be available and no request is in flight.
	StateIdle State = "idle"
	// StateLoading means a page request is in flight (or waiting out the
	// inter-request gap). At most one request is ever in flight.
	StateLoading State = "loading"
	// StateExhausted means the page cap was reached or a short page arrived.
	// Terminal for the session.
	StateExhausted State = "exhausted"
	// StateDegraded means the live feed was replaced by the sample dataset.
	// Terminal for the session; no further network attempts are made.
	StateDegraded State = "degraded"
)

const (
	defaultPerPage  = 10
	defaultMaxPages = 10
	// Minimum gap between upstream calls; balldontlie free tier allows
	// roughly one request per second.
	defaultMinInterval = 1100 * time.Millisecond
	defaultBackoff     = 1500 * time.Millisecond

	msgRateLimited = "Rate limited by API. Please wait a moment and try again."
	msgFeedFailed  = "Failed to load players. Showing sample data instead."
	msgNoAPIKey    = "No API key configured. Showing sample data."
)

// Config controls a Controller.
type Config struct {
	Source      providers.PlayerSource
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	Clock       clockwork.Clock
	APIKey      string // empty means no credential: first load degrades to sample data
	PerPage     int
	MaxPages    int
	MinInterval time.Duration
	Backoff     time.Duration
	Sample      []players.Player // fallback dataset; defaults to SamplePlayers()
}

// Controller incrementally loads a bounded, deduplicated set of players from
// a paginated source, throttled to a minimum inter-request interval, and
// degrades to a fixed sample dataset when the source cannot serve.
type Controller struct {
	source      providers.PlayerSource
	logger      *slog.Logger
	metrics     *metrics.Recorder
	clock       clockwork.Clock
	hasAPIKey   bool
	perPage     int
	maxPages    int
	minInterval time.Duration
	backoff     time.Duration
	sample      []players.Player

	mu          sync.Mutex
	players     []players.Player
	seen        map[int]struct{}
	page        int
	state       State
	message     string
	lastAttempt time.Time
}

// Snapshot is a consistent view of the controller for presentation surfaces.
type Snapshot struct {
	Players []players.Player `json:"players"`
	State   State            `json:"state"`
	Message string           `json:"message,omitempty"`
	Page    int              `json:"page"`
}

// NewController constructs a Controller with sane defaults.
func NewController(cfg Config) *Controller {
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	sample := cfg.Sample
	if sample == nil {
		sample = SamplePlayers()
	}
	return &Controller{
		source:      cfg.Source,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		clock:       clock,
		hasAPIKey:   cfg.APIKey != "",
		perPage:     resolvePositive(cfg.PerPage, defaultPerPage),
		maxPages:    resolvePositive(cfg.MaxPages, defaultMaxPages),
		minInterval: resolveDuration(cfg.MinInterval, defaultMinInterval),
		backoff:     resolveDuration(cfg.Backoff, defaultBackoff),
		sample:      sample,
		seen:        make(map[int]struct{}),
		page:        1,
		state:       StateIdle,
	}
}

// LoadNextPage drives the feed forward by one page. It is a no-op when a load
// is already in flight or the feed is in a terminal state. The returned error
// is only ever a context error: upstream failures surface through the state
// machine and the advisory message instead.
func (c *Controller) LoadNextPage(ctx context.Context) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return nil
	}

	if c.page > c.maxPages {
		c.state = StateExhausted
		c.mu.Unlock()
		return nil
	}

	if !c.hasAPIKey {
		c.degradeLocked(msgNoAPIKey)
		c.mu.Unlock()
		return nil
	}

	c.state = StateLoading
	c.message = ""
	page := c.page
	wait := c.gapRemainingLocked()
	c.mu.Unlock()

	if wait > 0 {
		if err := c.sleep(ctx, wait); err != nil {
			c.resetToIdle()
			return err
		}
	}

	result, err := c.source.FetchPlayers(ctx, page, c.perPage)

	c.mu.Lock()
	c.lastAttempt = c.clock.Now()
	c.mu.Unlock()

	if err != nil {
		return c.handleFetchError(ctx, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	merged := 0
	for _, p := range result {
		if _, dup := c.seen[p.ID]; dup {
			continue
		}
		c.seen[p.ID] = struct{}{}
		c.players = append(c.players, p)
		merged++
	}

	if len(result) < c.perPage || c.page >= c.maxPages {
		c.state = StateExhausted
	} else {
		c.page++
		c.state = StateIdle
	}

	logging.Info(c.logger, "player page merged",
		logging.FieldPage, page,
		logging.FieldCount, merged,
		"total", len(c.players),
		"state", string(c.state),
	)
	return nil
}

func (c *Controller) handleFetchError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		c.resetToIdle()
		return ctx.Err()
	}

	if _, ok := providers.AsRateLimitError(err); ok {
		// Fixed backoff, then back to Idle: the caller decides whether to
		// retry, nothing retries automatically.
		if sleepErr := c.sleep(ctx, c.backoff); sleepErr != nil {
			c.resetToIdle()
			return sleepErr
		}
		c.mu.Lock()
		c.state = StateIdle
		c.message = msgRateLimited
		c.mu.Unlock()
		return nil
	}

	logging.Warn(c.logger, "player feed degraded to sample data", "error", err)
	c.mu.Lock()
	c.degradeLocked(msgFeedFailed)
	c.mu.Unlock()
	return nil
}

// degradeLocked enters the terminal Degraded state, replacing whatever had
// been accumulated with the sample dataset.
func (c *Controller) degradeLocked(message string) {
	c.metrics.RecordFallback("feed")
	c.state = StateDegraded
	c.message = message
	c.players = make([]players.Player, 0, len(c.sample))
	c.seen = make(map[int]struct{}, len(c.sample))
	for _, p := range c.sample {
		if _, dup := c.seen[p.ID]; dup {
			continue
		}
		c.seen[p.ID] = struct{}{}
		c.players = append(c.players, p)
	}
}

func (c *Controller) resetToIdle() {
	c.mu.Lock()
	c.state = StateIdle
	c.mu.Unlock()
}

// gapRemainingLocked reports how long to wait before the next upstream call.
func (c *Controller) gapRemainingLocked() time.Duration {
	if c.lastAttempt.IsZero() {
		return 0
	}
	elapsed := c.clock.Now().Sub(c.lastAttempt)
	if elapsed >= c.minInterval {
		return 0
	}
	return c.minInterval - elapsed
}

// sleep waits cooperatively on the injected clock, honoring cancellation.
func (c *Controller) sleep(ctx context.Context, d time.Duration) error {
	timer := c.clock.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

// Players returns a copy of the accumulated collection in first-seen order.
func (c *Controller) Players() []players.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]players.Player, len(c.players))
	copy(out, c.players)
	return out
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Message returns the current advisory message, if any.
func (c *Controller) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// View returns a consistent snapshot of players, state, and message.
func (c *Controller) View() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]players.Player, len(c.players))
	copy(out, c.players)
	return Snapshot{
		Players: out,
		State:   c.state,
		Message: c.message,
		Page:    c.page,
	}
}

func resolvePositive(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

func resolveDuration(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return v
}
