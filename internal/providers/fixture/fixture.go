package fixture

import (
	"context"
	"fmt"

	"nba-scores/internal/domain"
)

const providerName = "fixture"

// Provider returns a static scoreboard useful for trying the UI without
// network access and for exercising the navigation flow in tests.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchGames returns a deterministic three-game slate for any date.
func (p *Provider) FetchGames(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx
	_ = date

	return []domain.Game{
		{
			ID:         "fixture-1",
			Provider:   providerName,
			Index:      1,
			HomeTeam:   domain.Team{ID: "team-1", Abbreviation: "BOS", City: "Boston", WinsLosses: "30-15"},
			AwayTeam:   domain.Team{ID: "team-2", Abbreviation: "LAL", City: "Los Angeles", WinsLosses: "25-20"},
			Status:     domain.StatusFinal,
			StatusText: "Final",
			Score:      domain.Score{Home: 110, Away: 102},
		},
		{
			ID:         "fixture-2",
			Provider:   providerName,
			Index:      2,
			HomeTeam:   domain.Team{ID: "team-3", Abbreviation: "GSW", City: "Golden State", WinsLosses: "33-14"},
			AwayTeam:   domain.Team{ID: "team-4", Abbreviation: "MIA", City: "Miami", WinsLosses: "21-22"},
			Status:     domain.StatusInProgress,
			StatusText: "Q3",
			LivePeriod: 3,
			LiveClock:  "4:12",
			Score:      domain.Score{Home: 78, Away: 71},
		},
		{
			ID:         "fixture-3",
			Provider:   providerName,
			Index:      3,
			HomeTeam:   domain.Team{ID: "team-5", Abbreviation: "MIL", City: "Milwaukee", WinsLosses: "34-12"},
			AwayTeam:   domain.Team{ID: "team-6", Abbreviation: "TOR", City: "Toronto", WinsLosses: "33-13"},
			Status:     domain.StatusScheduled,
			StatusText: "8:00 pm ET",
			Score:      domain.Score{Home: 0, Away: 0},
		},
	}, nil
}

// FetchGameDetail returns a deterministic box score for a fixture game.
func (p *Provider) FetchGameDetail(ctx context.Context, game domain.Game) (domain.GameDetail, error) {
	_ = ctx

	if game.ID == "" {
		return domain.GameDetail{}, fmt.Errorf("fixture: unknown game")
	}

	return domain.GameDetail{
		Game: game,
		Periods: []domain.PeriodScore{
			{Label: "Q1", Home: 28, Away: 25},
			{Label: "Q2", Home: 27, Away: 26},
			{Label: "Q3", Home: 25, Away: 24},
			{Label: "Q4", Home: 30, Away: 27},
		},
		Home: domain.TeamStatLine{FieldGoalPct: 0.47, FreeThrowPct: 0.82, ThreePointPct: 0.36, Assists: 25, Rebounds: 44, Turnovers: 12},
		Away: domain.TeamStatLine{FieldGoalPct: 0.45, FreeThrowPct: 0.78, ThreePointPct: 0.33, Assists: 22, Rebounds: 41, Turnovers: 15},
	}, nil
}
