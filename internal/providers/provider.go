package providers

import (
	"context"
	"errors"

	"nba-scores/internal/domain"
)

// ErrProviderUnavailable is returned when a provider is missing or nil.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ScoreProvider defines how upstream scoreboard data is fetched and
// normalized. The date parameter should be a YYYY-MM-DD string naming which
// day's games to fetch; providers interpret an empty date as "today".
type ScoreProvider interface {
	// FetchGames returns the day's games in feed order with selector
	// indices assigned 1..N. A day with no games yields an empty slice
	// and a nil error.
	FetchGames(ctx context.Context, date string) ([]domain.Game, error)

	// FetchGameDetail returns the extended view of one previously fetched
	// game.
	FetchGameDetail(ctx context.Context, game domain.Game) (domain.GameDetail, error)
}
