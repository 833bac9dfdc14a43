package domain

// Store defines the contract for holding the games fetched for the date
// currently being browsed.
type Store interface {
	ListGames() []Game
	GameByIndex(index int) (Game, bool)
	SetGames(games []Game)
}

// Session coordinates scoreboard data for one browsing session using a Store.
type Session struct {
	store Store
	date  string
}

// NewSession constructs a Session with the provided Store.
func NewSession(store Store) *Session {
	return &Session{store: store}
}

// Games returns the current date's games in feed order.
func (s *Session) Games() []Game {
	return s.store.ListGames()
}

// GameByIndex returns the game carrying the given selector index, if present.
func (s *Session) GameByIndex(index int) (Game, bool) {
	return s.store.GameByIndex(index)
}

// Replace swaps the session's games with the list fetched for a new date.
func (s *Session) Replace(date string, games []Game) {
	s.date = date
	s.store.SetGames(games)
}

// Date returns the date the current games were fetched for.
func (s *Session) Date() string {
	return s.date
}
