package testutil

import "nba-scores/internal/domain"

// SampleGame returns a minimal game fixture with the provided id and index.
func SampleGame(id string, index int) domain.Game {
	return domain.Game{
		ID:       id,
		Provider: "test",
		Index:    index,
		HomeTeam: domain.Team{ID: "team-1", Abbreviation: "BOS", City: "Boston", WinsLosses: "30-15"},
		AwayTeam: domain.Team{ID: "team-2", Abbreviation: "LAL", City: "Los Angeles", WinsLosses: "25-20"},
		Status:   domain.StatusScheduled,
		Score:    domain.Score{Home: 0, Away: 0},
	}
}

// ScoreboardJSON is a two-game scoreboardv2 payload in the feed's resultSets
// shape: one final game with full line scores and one scheduled game whose
// numeric columns are still null.
const ScoreboardJSON = `{
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_ID", "GAME_STATUS_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "LIVE_PERIOD", "LIVE_PC_TIME"],
			"rowSet": [
				["0021800555", 3, "Final", 1610612738, 1610612747, 4, ""],
				["0021800556", 1, "7:30 pm ET", 1610612744, 1610612748, 0, "     "]
			]
		},
		{
			"name": "LineScore",
			"headers": ["GAME_ID", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_CITY_NAME", "TEAM_WINS_LOSSES", "PTS", "FG_PCT", "FT_PCT", "FG3_PCT", "AST", "REB", "TOV"],
			"rowSet": [
				["0021800555", 1610612738, "BOS", "Boston", "30-15", 110, 0.47, 0.82, 0.36, 25, 44, 12],
				["0021800555", 1610612747, "LAL", "Los Angeles", "25-20", 102, 0.45, 0.78, 0.33, 22, 41, 15],
				["0021800556", 1610612744, "GSW", "Golden State", "33-14", null, null, null, null, null, null, null],
				["0021800556", 1610612748, "MIA", "Miami", "21-22", null, null, null, null, null, null, null]
			]
		}
	]
}`

// EmptyScoreboardJSON is a valid payload for a day with no scheduled games.
const EmptyScoreboardJSON = `{
	"resultSets": [
		{
			"name": "GameHeader",
			"headers": ["GAME_ID", "GAME_STATUS_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "LIVE_PERIOD", "LIVE_PC_TIME"],
			"rowSet": []
		},
		{
			"name": "LineScore",
			"headers": ["GAME_ID", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_CITY_NAME", "TEAM_WINS_LOSSES", "PTS", "FG_PCT", "FT_PCT", "FG3_PCT", "AST", "REB", "TOV"],
			"rowSet": []
		}
	]
}`

// BoxScoreJSON is a boxscoresummaryv2 payload for the final game above,
// including one overtime period.
const BoxScoreJSON = `{
	"resultSets": [
		{
			"name": "GameSummary",
			"headers": ["GAME_ID", "GAME_STATUS_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID", "LIVE_PERIOD", "LIVE_PC_TIME"],
			"rowSet": [
				["0021800555", 3, "Final", 1610612738, 1610612747, 5, ""]
			]
		},
		{
			"name": "LineScore",
			"headers": ["GAME_ID", "TEAM_ID", "TEAM_ABBREVIATION", "TEAM_CITY_NAME", "TEAM_WINS_LOSSES", "PTS", "PTS_QTR1", "PTS_QTR2", "PTS_QTR3", "PTS_QTR4", "PTS_OT1", "PTS_OT2", "FG_PCT", "FT_PCT", "FG3_PCT", "AST", "REB", "TOV"],
			"rowSet": [
				["0021800555", 1610612738, "BOS", "Boston", "30-15", 118, 25, 28, 22, 30, 13, null, 0.47, 0.82, 0.36, 25, 44, 12],
				["0021800555", 1610612747, "LAL", "Los Angeles", "25-20", 112, 27, 24, 26, 28, 7, null, 0.45, 0.78, 0.33, 22, 41, 15]
			]
		}
	]
}`
