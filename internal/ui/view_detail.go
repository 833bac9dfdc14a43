package ui

import (
	"fmt"
	"strings"

	"nba-scores/internal/domain"
)

// boxCellWidth is the character width of one box-score table cell.
const boxCellWidth = 5

func (m Model) detailView() string {
	d := m.detail
	g := d.Game

	lines := []string{
		m.center(fmt.Sprintf("%s v %s", g.AwayTeam.City, g.HomeTeam.City)),
		m.center(fmt.Sprintf("%d - %d", g.Score.Away, g.Score.Home)),
		m.center(statusLine(g)),
		"",
	}

	for _, row := range boxScoreTable(d) {
		lines = append(lines, m.center(row))
	}

	lines = append(lines, "")
	lines = append(lines, m.statColumns(d)...)
	return strings.Join(lines, "\n")
}

func statusLine(g domain.Game) string {
	if g.LiveClock != "" {
		return g.LiveClock + " " + g.StatusText
	}
	return g.StatusText
}

// boxScoreTable renders the per-period scoring grid:
//
//	     |  Q1 |  Q2 |  Q3 |  Q4 | OT1
//	-----+-----+-----+-----+-----+-----
//	 LAL |  27 |  24 |  26 |  28 |   7
//	 BOS |  25 |  28 |  22 |  30 |  13
func boxScoreTable(d domain.GameDetail) []string {
	headerCells := []string{alignCell("")}
	awayCells := []string{alignCell(d.Game.AwayTeam.Abbreviation)}
	homeCells := []string{alignCell(d.Game.HomeTeam.Abbreviation)}

	for _, p := range d.Periods {
		headerCells = append(headerCells, alignCell(p.Label))
		awayCells = append(awayCells, alignCell(fmt.Sprintf("%d", p.Away)))
		homeCells = append(homeCells, alignCell(fmt.Sprintf("%d", p.Home)))
	}

	fill := make([]string, len(headerCells))
	for i := range fill {
		fill[i] = strings.Repeat("-", boxCellWidth)
	}

	return []string{
		strings.Join(headerCells, "|"),
		strings.Join(fill, "+"),
		strings.Join(awayCells, "|"),
		strings.Join(homeCells, "|"),
	}
}

// alignCell right-aligns text within a box cell, leaving one trailing space.
func alignCell(text string) string {
	if len(text) > boxCellWidth-1 {
		text = text[:boxCellWidth-1]
	}
	return strings.Repeat(" ", boxCellWidth-1-len(text)) + text + " "
}

// statColumns renders the away and home shooting splits side by side.
func (m Model) statColumns(d domain.GameDetail) []string {
	away := statLines(d.Game.AwayTeam, d.Away)
	home := statLines(d.Game.HomeTeam, d.Home)

	colWidth := 0
	for _, s := range away {
		if len(s) > colWidth {
			colWidth = len(s)
		}
	}

	const gap = "        "
	rows := make([]string, 0, len(away))
	for i := range away {
		rows = append(rows, m.center(fmt.Sprintf("%-*s%s%s", colWidth, away[i], gap, home[i])))
	}
	return rows
}

func statLines(team domain.Team, s domain.TeamStatLine) []string {
	header := team.Abbreviation
	if team.WinsLosses != "" {
		header += " (" + team.WinsLosses + ")"
	}
	return []string{
		header,
		fmt.Sprintf(" FG%% : %.3f", s.FieldGoalPct),
		fmt.Sprintf(" FT%% : %.3f", s.FreeThrowPct),
		fmt.Sprintf("3pt%% : %.3f", s.ThreePointPct),
		fmt.Sprintf(" Ast : %d", s.Assists),
		fmt.Sprintf(" Reb : %d", s.Rebounds),
		fmt.Sprintf("  TO : %d", s.Turnovers),
	}
}
