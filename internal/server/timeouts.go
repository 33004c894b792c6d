package server

import "time"

const (
	readTimeout = 10 * time.Second
	// The feed endpoint can spend the throttle gap plus the backoff waiting
	// before it even reaches the upstream, so writes get extra headroom.
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
