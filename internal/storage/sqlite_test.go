package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestSaveSessionAndTop(t *testing.T) {
	store := openTestStore(t)

	sessions := []SessionRecord{
		{Score: 300, RoundsWon: 3, RoundsPlayed: 7, MaxSpeed: 1.0, DurationSecs: 40},
		{Score: 900, RoundsWon: 9, RoundsPlayed: 12, MaxSpeed: 1.4, DurationSecs: 70},
		{Score: 500, RoundsWon: 5, RoundsPlayed: 9, MaxSpeed: 1.2, DurationSecs: 55},
	}
	for _, rec := range sessions {
		id, err := store.SaveSession(rec, nil)
		if err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
		if id == "" {
			t.Error("SaveSession() returned empty ID")
		}
	}

	top, err := store.TopSessions(2)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("TopSessions(2) returned %d records", len(top))
	}
	if top[0].Score != 900 || top[1].Score != 500 {
		t.Errorf("wrong ordering: got %d, %d", top[0].Score, top[1].Score)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database reports zero, not an error.
	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() on empty db failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() = %d on empty db, want 0", score)
	}

	for _, s := range []int{200, 800, 400} {
		if _, err := store.SaveSession(SessionRecord{Score: s}, nil); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	score, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 800 {
		t.Errorf("HighScore() = %d, want 800", score)
	}
}

func TestRoundStatsAggregation(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSession(SessionRecord{Score: 200}, []RoundResult{
		{RoundID: "catch", Won: true},
		{RoundID: "catch", Won: false},
		{RoundID: "mash", Won: true},
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	_, err = store.SaveSession(SessionRecord{Score: 100}, []RoundResult{
		{RoundID: "catch", Won: true},
	})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	stats, err := store.AllRoundStats()
	if err != nil {
		t.Fatalf("AllRoundStats() failed: %v", err)
	}

	catch := stats["catch"]
	if catch.Plays != 3 || catch.Wins != 2 {
		t.Errorf("catch stats = %d plays / %d wins, want 3/2", catch.Plays, catch.Wins)
	}
	if rate := catch.WinRate(); rate < 0.66 || rate > 0.67 {
		t.Errorf("catch win rate = %f, want ~0.667", rate)
	}

	mash := stats["mash"]
	if mash.Plays != 1 || mash.Wins != 1 {
		t.Errorf("mash stats = %d/%d, want 1/1", mash.Plays, mash.Wins)
	}
}

func TestRecentSessionsOrder(t *testing.T) {
	store := openTestStore(t)

	for i, s := range []int{100, 200, 300} {
		rec := SessionRecord{ID: string(rune('a' + i)), Score: s}
		if _, err := store.SaveSession(rec, nil); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentSessions() returned %d records", len(recent))
	}
}

func TestClearSessions(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSession(SessionRecord{Score: 100}, []RoundResult{{RoundID: "catch", Won: true}})
	if err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	if err := store.ClearSessions(); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	score, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if score != 0 {
		t.Errorf("HighScore() = %d after clear, want 0", score)
	}
}
