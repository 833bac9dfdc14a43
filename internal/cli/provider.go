package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"nba-scores/internal/config"
	"nba-scores/internal/metrics"
	"nba-scores/internal/providers"
	"nba-scores/internal/providers/fixture"
	"nba-scores/internal/providers/nbastats"
)

// buildProvider constructs the configured ScoreProvider wrapped with
// logging and metrics instrumentation.
func buildProvider(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (providers.ScoreProvider, error) {
	var inner providers.ScoreProvider

	switch cfg.Provider {
	case config.ProviderNBAStats:
		inner = nbastats.NewClient(nbastats.Config{
			BaseURL:    cfg.NBAStats.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.NBAStats.Timeout},
		})
	case config.ProviderFixture:
		inner = fixture.New()
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}

	return providers.NewInstrumentedProvider(inner, cfg.Provider, logger, recorder), nil
}
