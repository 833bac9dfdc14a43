package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-scores/internal/domain"
	"nba-scores/internal/metrics"
)

// instrumentedProvider wraps a ScoreProvider, logging each call and recording
// its latency and outcome into a metrics.Recorder.
type instrumentedProvider struct {
	next     ScoreProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider decorates the given provider with logging and
// metrics. The name is used as the metrics key and log field.
func NewInstrumentedProvider(next ScoreProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) ScoreProvider {
	return &instrumentedProvider{
		next:     next,
		name:     name,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}

	start := p.now()
	games, err := p.next.FetchGames(ctx, date)
	duration := p.now().Sub(start)

	p.recorder.RecordProviderAttempt(p.name, duration, err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "fetch games failed",
			slog.String("date", date), slog.Duration("duration", duration), slog.Any("err", err))
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "fetched games",
		slog.String("date", date), slog.Int("count", len(games)), slog.Duration("duration", duration))
	return games, nil
}

func (p *instrumentedProvider) FetchGameDetail(ctx context.Context, game domain.Game) (domain.GameDetail, error) {
	if p == nil || p.next == nil {
		return domain.GameDetail{}, ErrProviderUnavailable
	}

	start := p.now()
	detail, err := p.next.FetchGameDetail(ctx, game)
	duration := p.now().Sub(start)

	p.recorder.RecordProviderAttempt(p.name, duration, err)
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "fetch game detail failed",
			slog.String("game_id", game.ID), slog.Duration("duration", duration), slog.Any("err", err))
		return domain.GameDetail{}, err
	}
	logWithProvider(ctx, p.logger, slog.LevelInfo, p.name, "fetched game detail",
		slog.String("game_id", game.ID), slog.Duration("duration", duration))
	return detail, nil
}
