package domain

import "testing"

type stubStore struct {
	listResult []Game
	getResult  Game
	getOK      bool

	setCalls int
	setValue []Game
}

func (s *stubStore) ListGames() []Game {
	return s.listResult
}

func (s *stubStore) GameByIndex(index int) (Game, bool) {
	_ = index
	return s.getResult, s.getOK
}

func (s *stubStore) SetGames(games []Game) {
	s.setCalls++
	s.setValue = games
}

func TestSessionGames(t *testing.T) {
	store := &stubStore{
		listResult: []Game{{ID: "one"}, {ID: "two"}},
	}
	sess := NewSession(store)

	games := sess.Games()
	if len(games) != 2 {
		t.Fatalf("expected 2 games, got %d", len(games))
	}
}

func TestSessionGameByIndex(t *testing.T) {
	store := &stubStore{getResult: Game{ID: "one", Index: 1}, getOK: true}
	sess := NewSession(store)

	game, ok := sess.GameByIndex(1)
	if !ok {
		t.Fatalf("expected game to be found")
	}
	if game.ID != "one" {
		t.Fatalf("unexpected game id %s", game.ID)
	}
}

func TestSessionReplaceSetsDateAndGames(t *testing.T) {
	store := &stubStore{}
	sess := NewSession(store)

	sess.Replace("2019-01-15", []Game{{ID: "one"}})

	if store.setCalls != 1 {
		t.Fatalf("expected one SetGames call, got %d", store.setCalls)
	}
	if len(store.setValue) != 1 {
		t.Fatalf("expected 1 game stored, got %d", len(store.setValue))
	}
	if sess.Date() != "2019-01-15" {
		t.Fatalf("unexpected session date %s", sess.Date())
	}
}
