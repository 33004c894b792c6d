package config

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"

	defaultBdlBaseURL = "https://api.balldontlie.io/v1"
)

// BalldontlieConfig controls how we talk to the balldontlie API. An empty
// APIKey is a valid, handled condition: the feed degrades to sample data
// instead of failing at startup.
type BalldontlieConfig struct {
	BaseURL string
	APIKey  string
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		APIKey:  envOrDefault(envBdlAPIKey, ""),
	}
}
