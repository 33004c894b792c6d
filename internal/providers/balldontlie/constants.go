package balldontlie

import "time"

const (
	sourceName = "balldontlie"

	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultHTTPTimeout = 10 * time.Second
)
