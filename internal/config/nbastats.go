package config

import "time"

const (
	envStatsBaseURL = "NBA_STATS_BASE_URL"
	envStatsTimeout = "NBA_STATS_TIMEOUT"

	defaultStatsBaseURL = "https://stats.nba.com"
	defaultStatsTimeout = 10 * time.Second
)

// NBAStatsConfig controls how we talk to the stats.nba.com feed.
type NBAStatsConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL: envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout: durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
	}
}
