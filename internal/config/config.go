package config

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	DataDir        string
	AllowedOrigins []string
	Balldontlie    BalldontlieConfig
	Feed           FeedConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		DataDir:        envOrDefault(envDataDir, defaultDataDir),
		AllowedOrigins: listEnvOrDefault(envAllowedOrigins, []string{"*"}),
		Balldontlie:    loadBalldontlie(),
		Feed:           loadFeed(),
		Metrics:        loadMetrics(),
	}
}
