package ui

import (
	"fmt"
	"strings"

	"nba-scores/internal/domain"
)

func (m Model) listView() string {
	games := m.session.Games()

	lines := []string{m.center(fmt.Sprintf("Games for %s", m.session.Date())), ""}
	if len(games) == 0 {
		lines = append(lines, m.center("No games scheduled."))
		return strings.Join(lines, "\n")
	}

	for _, g := range games {
		lines = append(lines, m.center(fmt.Sprintf("(%d) %s", g.Index, topline(g))))
	}
	return strings.Join(lines, "\n")
}

// topline renders a game as one scoreboard row: away score first, then the
// clock and status, mirroring how the feed's own scoreboard reads.
func topline(g domain.Game) string {
	status := g.StatusText
	if g.LiveClock != "" {
		status = g.LiveClock + " " + status
	}
	return fmt.Sprintf("%s %d - %d %s   %s",
		g.AwayTeam.Abbreviation, g.Score.Away, g.Score.Home, g.HomeTeam.Abbreviation, status)
}
