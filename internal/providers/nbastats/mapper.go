package nbastats

import (
	"fmt"
	"strings"

	"nba-scores/internal/domain"
	"nba-scores/internal/providers"
)

// lineKey joins a LineScore row to its game and team.
type lineKey struct {
	gameID string
	teamID int
}

func indexLineScores(lines resultSet) map[lineKey]row {
	index := make(map[lineKey]row, len(lines.RowSet))
	for _, r := range lines.rows() {
		index[lineKey{gameID: r.str("GAME_ID"), teamID: r.intval("TEAM_ID")}] = r
	}
	return index
}

func mapGames(payload statsResponse) ([]domain.Game, error) {
	headers, ok := payload.set("GameHeader")
	if !ok {
		return nil, &providers.ParseError{Provider: providerName, Message: "missing GameHeader result set"}
	}
	lines, ok := payload.set("LineScore")
	if !ok && len(headers.RowSet) > 0 {
		return nil, &providers.ParseError{Provider: providerName, Message: "missing LineScore result set"}
	}
	lineIndex := indexLineScores(lines)

	games := make([]domain.Game, 0, len(headers.RowSet))
	for i, h := range headers.rows() {
		game, err := mapGame(h, lineIndex)
		if err != nil {
			return nil, err
		}
		game.Index = i + 1
		games = append(games, game)
	}
	return games, nil
}

func mapGame(h row, lineIndex map[lineKey]row) (domain.Game, error) {
	gameID := h.str("GAME_ID")
	if gameID == "" {
		return domain.Game{}, &providers.ParseError{Provider: providerName, Message: "game header missing GAME_ID"}
	}

	homeLine, ok := lineIndex[lineKey{gameID: gameID, teamID: h.intval("HOME_TEAM_ID")}]
	if !ok {
		return domain.Game{}, &providers.ParseError{
			Provider: providerName,
			Message:  fmt.Sprintf("no home line score for game %s", gameID),
		}
	}
	awayLine, ok := lineIndex[lineKey{gameID: gameID, teamID: h.intval("VISITOR_TEAM_ID")}]
	if !ok {
		return domain.Game{}, &providers.ParseError{
			Provider: providerName,
			Message:  fmt.Sprintf("no visitor line score for game %s", gameID),
		}
	}

	statusText := strings.TrimSpace(h.str("GAME_STATUS_TEXT"))

	return domain.Game{
		ID:         gameID,
		Provider:   providerName,
		HomeTeam:   mapTeam(homeLine),
		AwayTeam:   mapTeam(awayLine),
		Status:     mapStatus(h.intval("GAME_STATUS_ID"), statusText),
		StatusText: statusText,
		LivePeriod: h.intval("LIVE_PERIOD"),
		LiveClock:  strings.TrimSpace(h.str("LIVE_PC_TIME")),
		Score: domain.Score{
			Home: homeLine.intval("PTS"),
			Away: awayLine.intval("PTS"),
		},
	}, nil
}

func mapTeam(line row) domain.Team {
	return domain.Team{
		ID:           fmt.Sprintf("team-%d", line.intval("TEAM_ID")),
		Abbreviation: line.str("TEAM_ABBREVIATION"),
		City:         line.str("TEAM_CITY_NAME"),
		WinsLosses:   line.str("TEAM_WINS_LOSSES"),
	}
}

// The feed's GAME_STATUS_ID is 1 for scheduled, 2 for live, 3 for final;
// postponements and cancellations only show up in the status text.
func mapStatus(statusID int, statusText string) domain.GameStatus {
	text := strings.ToLower(statusText)
	switch {
	case strings.Contains(text, "ppd"), strings.Contains(text, "postponed"):
		return domain.StatusPostponed
	case strings.Contains(text, "cancel"):
		return domain.StatusCanceled
	}

	switch statusID {
	case 2:
		return domain.StatusInProgress
	case 3:
		return domain.StatusFinal
	default:
		return domain.StatusScheduled
	}
}

// overtimePeriods is the most OT columns the feed exposes.
const overtimePeriods = 10

func mapDetail(game domain.Game, payload statsResponse) (domain.GameDetail, error) {
	summary, ok := payload.set("GameSummary")
	if !ok || len(summary.RowSet) == 0 {
		return domain.GameDetail{}, &providers.ParseError{Provider: providerName, Message: "missing GameSummary result set"}
	}
	lines, ok := payload.set("LineScore")
	if !ok {
		return domain.GameDetail{}, &providers.ParseError{Provider: providerName, Message: "missing LineScore result set"}
	}

	h := summary.rows()[0]
	lineIndex := indexLineScores(lines)
	gameID := h.str("GAME_ID")
	if gameID == "" {
		gameID = game.ID
	}

	homeLine, ok := lineIndex[lineKey{gameID: gameID, teamID: h.intval("HOME_TEAM_ID")}]
	if !ok {
		return domain.GameDetail{}, &providers.ParseError{
			Provider: providerName,
			Message:  fmt.Sprintf("no home line score for game %s", gameID),
		}
	}
	awayLine, ok := lineIndex[lineKey{gameID: gameID, teamID: h.intval("VISITOR_TEAM_ID")}]
	if !ok {
		return domain.GameDetail{}, &providers.ParseError{
			Provider: providerName,
			Message:  fmt.Sprintf("no visitor line score for game %s", gameID),
		}
	}

	// Refresh the summary fields so the detail screen shows the score as of
	// this fetch, not the one from the original list load.
	statusText := strings.TrimSpace(h.str("GAME_STATUS_TEXT"))
	game.Status = mapStatus(h.intval("GAME_STATUS_ID"), statusText)
	game.StatusText = statusText
	game.LivePeriod = h.intval("LIVE_PERIOD")
	game.LiveClock = strings.TrimSpace(h.str("LIVE_PC_TIME"))
	game.Score = domain.Score{Home: homeLine.intval("PTS"), Away: awayLine.intval("PTS")}
	game.HomeTeam = mapTeam(homeLine)
	game.AwayTeam = mapTeam(awayLine)

	return domain.GameDetail{
		Game:    game,
		Periods: mapPeriods(homeLine, awayLine),
		Home:    mapStatLine(homeLine),
		Away:    mapStatLine(awayLine),
	}, nil
}

// mapPeriods emits the four regulation quarters plus any overtime periods
// that were actually played.
func mapPeriods(home, away row) []domain.PeriodScore {
	periods := make([]domain.PeriodScore, 0, 4)
	for q := 1; q <= 4; q++ {
		key := fmt.Sprintf("PTS_QTR%d", q)
		periods = append(periods, domain.PeriodScore{
			Label: fmt.Sprintf("Q%d", q),
			Home:  home.intval(key),
			Away:  away.intval(key),
		})
	}
	for ot := 1; ot <= overtimePeriods; ot++ {
		key := fmt.Sprintf("PTS_OT%d", ot)
		if home.intval(key) == 0 && away.intval(key) == 0 {
			continue
		}
		periods = append(periods, domain.PeriodScore{
			Label: fmt.Sprintf("OT%d", ot),
			Home:  home.intval(key),
			Away:  away.intval(key),
		})
	}
	return periods
}

func mapStatLine(line row) domain.TeamStatLine {
	return domain.TeamStatLine{
		FieldGoalPct:  line.num("FG_PCT"),
		FreeThrowPct:  line.num("FT_PCT"),
		ThreePointPct: line.num("FG3_PCT"),
		Assists:       line.intval("AST"),
		Rebounds:      line.intval("REB"),
		Turnovers:     line.intval("TOV"),
	}
}
