package config

// Config holds runtime configuration for the scoreboard browser.
type Config struct {
	Provider  string
	LogFile   string
	LogLevel  string
	LogFormat string
	NBAStats  NBAStatsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:  envOrDefault(envProvider, defaultProvider),
		LogFile:   envOrDefault(envLogFile, ""),
		LogLevel:  envOrDefault(envLogLevel, ""),
		LogFormat: envOrDefault(envLogFormat, ""),
		NBAStats:  loadNBAStats(),
	}
}
