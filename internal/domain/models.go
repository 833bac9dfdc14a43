package domain

// GameStatus captures the lifecycle state of a game on the scoreboard.
type GameStatus string

const (
	StatusScheduled  GameStatus = "SCHEDULED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusFinal      GameStatus = "FINAL"
	StatusPostponed  GameStatus = "POSTPONED"
	StatusCanceled   GameStatus = "CANCELED"
)

// Score captures home and away points.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Team represents the normalized team shape shown on the scoreboard.
type Team struct {
	ID           string `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	WinsLosses   string `json:"winsLosses"`
}

// Game is one game on a given date's scoreboard. Index is the selector the
// user types to open the game; it is assigned 1..N in feed order on every
// list fetch and stays fixed until a new date is queried.
type Game struct {
	ID         string     `json:"id"`
	Provider   string     `json:"provider"`
	Index      int        `json:"index"`
	HomeTeam   Team       `json:"homeTeam"`
	AwayTeam   Team       `json:"awayTeam"`
	Status     GameStatus `json:"status"`
	StatusText string     `json:"statusText"`
	LivePeriod int        `json:"livePeriod,omitempty"`
	LiveClock  string     `json:"liveClock,omitempty"`
	Score      Score      `json:"score"`
}

// PeriodScore represents scoring for a single period of play.
type PeriodScore struct {
	Label string `json:"label"`
	Home  int    `json:"home"`
	Away  int    `json:"away"`
}

// TeamStatLine holds the secondary team stats shown on the detail screen.
type TeamStatLine struct {
	FieldGoalPct  float64 `json:"fieldGoalPct"`
	FreeThrowPct  float64 `json:"freeThrowPct"`
	ThreePointPct float64 `json:"threePointPct"`
	Assists       int     `json:"assists"`
	Rebounds      int     `json:"rebounds"`
	Turnovers     int     `json:"turnovers"`
}

// GameDetail is the extended view of one Game. It is fetched lazily when the
// user selects a game and discarded when they navigate back.
type GameDetail struct {
	Game    Game          `json:"game"`
	Periods []PeriodScore `json:"periods"`
	Home    TeamStatLine  `json:"home"`
	Away    TeamStatLine  `json:"away"`
}
