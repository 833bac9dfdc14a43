package ui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"nba-scores/internal/domain"
	"nba-scores/internal/metrics"
	"nba-scores/internal/providers"
)

// screen names the view currently on the terminal.
type screen int

const (
	screenList screen = iota
	screenDetail
)

// Model drives the two-screen navigator: a list of the day's games and a
// detail view for one selected game. Transitions happen only in Update;
// View is a pure render of the current state.
type Model struct {
	session  *domain.Session
	provider providers.ScoreProvider
	recorder *metrics.Recorder
	logger   *slog.Logger

	screen screen
	detail domain.GameDetail
	errMsg string

	width  int
	height int
}

// New constructs the navigator over an already-populated session.
func New(session *domain.Session, provider providers.ScoreProvider, recorder *metrics.Recorder, logger *slog.Logger) Model {
	return Model{
		session:  session,
		provider: provider,
		recorder: recorder,
		logger:   logger,
		screen:   screenList,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "b":
		if m.screen == screenDetail {
			// Back to the list previously fetched; no re-fetch.
			m.screen = screenList
			m.detail = domain.GameDetail{}
		}
		return m, nil
	}

	if m.screen == screenList {
		if index, ok := selectorIndex(key); ok {
			return m.selectGame(index), nil
		}
	}
	return m, nil
}

// selectorIndex maps a digit key to a selector index; '0' addresses the
// tenth game so a full ten-game slate stays reachable.
func selectorIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '0' || key[0] > '9' {
		return 0, false
	}
	if key == "0" {
		return 10, true
	}
	return int(key[0] - '0'), true
}

// selectGame fetches the chosen game's detail. A digit with no matching game
// is a defined no-op, and a failed fetch reports in place and leaves the
// user on the list. The fetch blocks the key loop until it returns.
func (m Model) selectGame(index int) Model {
	game, ok := m.session.GameByIndex(index)
	if !ok {
		return m
	}

	detail, err := m.provider.FetchGameDetail(context.Background(), game)
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("detail fetch failed", slog.String("game_id", game.ID), slog.Any("err", err))
		}
		m.errMsg = "could not load game detail: " + err.Error()
		return m
	}

	m.detail = detail
	m.screen = screenDetail
	m.errMsg = ""
	return m
}
