package storage

import (
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("flappy", "s1", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("snake", "s1", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("flappy", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}
	if scores[0].SessionID != "s1" || scores[0].GameID != "flappy" {
		t.Errorf("entry fields not stored: %+v", scores[0])
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 15; i++ {
		store.SaveScore("test", "s", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 || scores[0].Score != 1500 || scores[2].Score != 1300 {
		t.Errorf("unexpected top 3: %v", scores)
	}

	defaults, _ := store.TopScores("test", 0)
	if len(defaults) != 10 {
		t.Errorf("limit 0 should return 10 rows, got %d", len(defaults))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("flappy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("expected 0 for a game without scores, got %d", high)
	}

	store.SaveScore("flappy", "a", 100)
	store.SaveScore("flappy", "b", 300)
	store.SaveScore("flappy", "a", 200)

	if high, _ = store.HighScore("flappy"); high != 300 {
		t.Errorf("expected high score 300, got %d", high)
	}
}

func TestStoreGamesWithScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("tetris", "s", 1)
	store.SaveScore("breakout", "s", 1)
	store.SaveScore("tetris", "s", 2)

	ids, err := store.GamesWithScores()
	if err != nil {
		t.Fatalf("GamesWithScores() failed: %v", err)
	}
	if fmt.Sprint(ids) != "[breakout tetris]" {
		t.Errorf("GamesWithScores() = %v, expected [breakout tetris]", ids)
	}
}

func TestStoreSummary(t *testing.T) {
	store := openTestStore(t)

	if got, err := store.Summary(); err != nil || len(got) != 0 {
		t.Fatalf("empty Summary() = %v, %v", got, err)
	}

	for _, score := range []int{30, 90, 10} {
		store.SaveScore("snake", "s1", score)
	}
	store.SaveScore("catch", "s2", 4)

	got, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	want := []GameSummary{
		{GameID: "catch", Rounds: 1, Best: 4, Last: 4},
		{GameID: "snake", Rounds: 3, Best: 90, Last: 10},
	}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Summary() = %v, want %v", got, want)
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveScore("pong", "s", 7)

	if high, _ := b.HighScore("pong"); high != 0 {
		t.Errorf("a fresh store must start empty, got high score %d", high)
	}
}

func TestStoreForgetsOnClose(t *testing.T) {
	store, err := Open()
	if err != nil {
		t.Fatal(err)
	}
	store.SaveScore("pong", "s", 7)
	store.Close()

	fresh := openTestStore(t)
	if ids, _ := fresh.GamesWithScores(); len(ids) != 0 {
		t.Errorf("scores must not survive Close, got %v", ids)
	}
}
