package config

// FeedConfig bounds the player feed: fixed page size, hard page cap, and the
// throttle/backoff intervals for upstream calls.
type FeedConfig struct {
	PerPage     int
	MaxPages    int
	MinInterval Duration
	Backoff     Duration
}

func loadFeed() FeedConfig {
	return FeedConfig{
		PerPage:     intEnvOrDefault(envFeedPerPage, defaultFeedPerPage),
		MaxPages:    intEnvOrDefault(envFeedMaxPages, defaultFeedMaxPages),
		MinInterval: durationEnvOrDefault(envFeedMinInterval, defaultFeedMinInterval),
		Backoff:     durationEnvOrDefault(envFeedBackoff, defaultFeedBackoff),
	}
}
