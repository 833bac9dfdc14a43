package config

const (
	envProvider  = "NBA_SCORES_PROVIDER"
	envLogFile   = "NBA_SCORES_LOG_FILE"
	envLogLevel  = "LOG_LEVEL"
	envLogFormat = "LOG_FORMAT"

	defaultProvider = "nbastats"

	// ProviderNBAStats fetches live data from stats.nba.com.
	ProviderNBAStats = "nbastats"
	// ProviderFixture serves deterministic offline data.
	ProviderFixture = "fixture"
)
