package ui

import (
	"strings"
	"testing"

	"nba-scores/internal/domain"
	"nba-scores/internal/metrics"
	"nba-scores/internal/store"
)

func newViewModel(games []domain.Game) Model {
	session := domain.NewSession(store.NewMemoryStore())
	session.Replace("2019-01-15", games)
	return New(session, &stubProvider{}, metrics.NewRecorder(), nil)
}

func TestListViewShowsOneRowPerGame(t *testing.T) {
	m := newViewModel([]domain.Game{
		{
			Index:    1,
			HomeTeam: domain.Team{Abbreviation: "BOS"},
			AwayTeam: domain.Team{Abbreviation: "LAL"},
			Score:    domain.Score{Home: 110, Away: 102},
			Status:   domain.StatusFinal, StatusText: "Final",
		},
		{
			Index:    2,
			HomeTeam: domain.Team{Abbreviation: "GSW"},
			AwayTeam: domain.Team{Abbreviation: "MIA"},
			StatusText: "7:30 pm ET",
		},
	})

	out := m.View()
	if !strings.Contains(out, "(1) LAL 102 - 110 BOS   Final") {
		t.Fatalf("expected first row, got:\n%s", out)
	}
	if !strings.Contains(out, "(2) MIA 0 - 0 GSW   7:30 pm ET") {
		t.Fatalf("expected second row, got:\n%s", out)
	}
	if !strings.Contains(out, "2019-01-15") {
		t.Fatalf("expected date header, got:\n%s", out)
	}
}

func TestListViewEmptyDay(t *testing.T) {
	m := newViewModel(nil)

	out := m.View()
	if !strings.Contains(out, "No games scheduled.") {
		t.Fatalf("expected empty-day message, got:\n%s", out)
	}
	if !strings.Contains(out, "Press 'q' to exit") {
		t.Fatalf("expected status bar, got:\n%s", out)
	}
}

func TestToplineIncludesLiveClock(t *testing.T) {
	g := domain.Game{
		HomeTeam:   domain.Team{Abbreviation: "GSW"},
		AwayTeam:   domain.Team{Abbreviation: "MIA"},
		Score:      domain.Score{Home: 78, Away: 71},
		StatusText: "Q3",
		LiveClock:  "4:12",
	}

	if got := topline(g); got != "MIA 71 - 78 GSW   4:12 Q3" {
		t.Fatalf("unexpected topline %q", got)
	}
}

func TestDetailViewRendersBoxScore(t *testing.T) {
	m := newViewModel(nil)
	m.screen = screenDetail
	m.detail = domain.GameDetail{
		Game: domain.Game{
			HomeTeam: domain.Team{Abbreviation: "BOS", City: "Boston", WinsLosses: "30-15"},
			AwayTeam: domain.Team{Abbreviation: "LAL", City: "Los Angeles", WinsLosses: "25-20"},
			Score:    domain.Score{Home: 118, Away: 112},
			StatusText: "Final",
		},
		Periods: []domain.PeriodScore{
			{Label: "Q1", Home: 25, Away: 27},
			{Label: "Q2", Home: 28, Away: 24},
			{Label: "Q3", Home: 22, Away: 26},
			{Label: "Q4", Home: 30, Away: 28},
			{Label: "OT1", Home: 13, Away: 7},
		},
		Home: domain.TeamStatLine{FieldGoalPct: 0.47, Assists: 25},
		Away: domain.TeamStatLine{FieldGoalPct: 0.45, Assists: 22},
	}

	out := m.View()
	if !strings.Contains(out, "Los Angeles v Boston") {
		t.Fatalf("expected title, got:\n%s", out)
	}
	if !strings.Contains(out, "112 - 118") {
		t.Fatalf("expected score line, got:\n%s", out)
	}
	if !strings.Contains(out, "OT1") {
		t.Fatalf("expected overtime column, got:\n%s", out)
	}
	if !strings.Contains(out, "FG% : 0.450") {
		t.Fatalf("expected away shooting splits, got:\n%s", out)
	}
	if !strings.Contains(out, "LAL (25-20)") {
		t.Fatalf("expected away record in the stat header, got:\n%s", out)
	}
	if !strings.Contains(out, "press 'b' to back") {
		t.Fatalf("expected back hint, got:\n%s", out)
	}
}

func TestBoxScoreTableAlignment(t *testing.T) {
	d := domain.GameDetail{
		Game: domain.Game{
			HomeTeam: domain.Team{Abbreviation: "BOS"},
			AwayTeam: domain.Team{Abbreviation: "LAL"},
		},
		Periods: []domain.PeriodScore{{Label: "Q1", Home: 25, Away: 7}},
	}

	rows := boxScoreTable(d)
	if len(rows) != 4 {
		t.Fatalf("expected 4 table rows, got %d", len(rows))
	}
	if rows[0] != "     |  Q1 " {
		t.Fatalf("unexpected header row %q", rows[0])
	}
	if rows[1] != "-----+-----" {
		t.Fatalf("unexpected fill row %q", rows[1])
	}
	if rows[2] != " LAL |   7 " {
		t.Fatalf("unexpected away row %q", rows[2])
	}
}

func TestStatusBarShowsLastFetchLatency(t *testing.T) {
	m := newViewModel(nil)
	m.recorder.RecordProviderAttempt("nbastats", 0, nil)

	out := m.View()
	if !strings.Contains(out, "last fetch") {
		t.Fatalf("expected fetch latency in status bar, got:\n%s", out)
	}
}
