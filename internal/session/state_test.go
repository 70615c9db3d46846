package session

import "testing"

func TestApplyOutcomeWin(t *testing.T) {
	st := NewState(DefaultRules(), 12)

	st.ApplyOutcome(OutcomeWon)

	if st.Score != 100 {
		t.Errorf("Score = %d, want 100", st.Score)
	}
	if st.RoundsWon != 1 {
		t.Errorf("RoundsWon = %d, want 1", st.RoundsWon)
	}
	if st.Lives != 4 {
		t.Errorf("win must not cost a life, Lives = %d", st.Lives)
	}
}

func TestApplyOutcomeFail(t *testing.T) {
	st := NewState(DefaultRules(), 12)

	st.ApplyOutcome(OutcomeFailed)

	if st.Lives != 3 {
		t.Errorf("Lives = %d, want 3", st.Lives)
	}
	if st.Score != 0 || st.RoundsWon != 0 {
		t.Error("fail must not change score or win count")
	}
}

func TestLivesNeverNegative(t *testing.T) {
	st := NewState(DefaultRules(), 12)

	for i := 0; i < 10; i++ {
		st.ApplyOutcome(OutcomeFailed)
	}

	if st.Lives != 0 {
		t.Errorf("Lives = %d, want 0", st.Lives)
	}
	if !st.GameOver() {
		t.Error("session should be over at zero lives")
	}
}

func TestSpeedStepsEveryFifthWin(t *testing.T) {
	st := NewState(DefaultRules(), 12)

	for i := 1; i <= 4; i++ {
		st.ApplyOutcome(OutcomeWon)
		if st.Speed != 1.0 {
			t.Fatalf("speed bumped early at win %d: %f", i, st.Speed)
		}
	}

	st.ApplyOutcome(OutcomeWon) // 5th win
	if got := st.Speed; got < 1.199 || got > 1.201 {
		t.Errorf("Speed after 5th win = %f, want 1.2", got)
	}

	// A fail between wins must not disturb the cadence: it is the win
	// count that drives the step, not rounds played.
	st.ApplyOutcome(OutcomeFailed)
	for i := 6; i <= 9; i++ {
		st.ApplyOutcome(OutcomeWon)
	}
	if got := st.Speed; got < 1.199 || got > 1.201 {
		t.Errorf("Speed before 10th win = %f, want 1.2", got)
	}
	st.ApplyOutcome(OutcomeWon) // 10th win
	if got := st.Speed; got < 1.399 || got > 1.401 {
		t.Errorf("Speed after 10th win = %f, want 1.4", got)
	}
}

func TestSpeedCap(t *testing.T) {
	st := NewState(DefaultRules(), 12)

	for i := 0; i < 200; i++ {
		st.ApplyOutcome(OutcomeWon)
	}

	if st.Speed > 3.0 {
		t.Errorf("Speed = %f exceeds cap 3.0", st.Speed)
	}
	if st.Speed < 2.999 {
		t.Errorf("Speed = %f should have reached the cap", st.Speed)
	}
}

func TestHistoryWindowSizing(t *testing.T) {
	tests := []struct {
		catalogSize int
		want        int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{5, 2},
		{6, 3},
		{12, 3},
		{40, 3},
	}
	for _, tt := range tests {
		st := NewState(DefaultRules(), tt.catalogSize)
		if got := st.HistorySize(); got != tt.want {
			t.Errorf("catalog %d: history size = %d, want %d", tt.catalogSize, got, tt.want)
		}
	}
}

func TestHistoryFIFOEviction(t *testing.T) {
	st := NewState(DefaultRules(), 12) // window of 3

	for _, id := range []string{"a", "b", "c", "d"} {
		st.recordPlayed(id)
	}

	recent := st.Recent()
	if len(recent) != 3 {
		t.Fatalf("history length = %d, want 3", len(recent))
	}
	want := []string{"b", "c", "d"}
	for i, id := range want {
		if recent[i] != id {
			t.Errorf("history[%d] = %q, want %q (oldest evicted first)", i, recent[i], id)
		}
	}
	if st.LastRound() != "d" {
		t.Errorf("LastRound = %q, want %q", st.LastRound(), "d")
	}
}

func TestLastRoundKeptWithoutHistory(t *testing.T) {
	st := NewState(DefaultRules(), 1) // window of 0

	st.recordPlayed("solo")

	if len(st.Recent()) != 0 {
		t.Error("tiny catalog should keep no history")
	}
	if st.LastRound() != "solo" {
		t.Errorf("LastRound = %q, want %q", st.LastRound(), "solo")
	}
}

// The full progression walked fail by fail: four failures end the session,
// the fifth win steps the speed, wins never cost lives.
func TestProgressionScenario(t *testing.T) {
	st := NewState(DefaultRules(), 12)

	st.ApplyOutcome(OutcomeWon)
	if st.Score != 100 || st.RoundsWon != 1 || st.Lives != 4 {
		t.Fatalf("after round 1: score=%d won=%d lives=%d", st.Score, st.RoundsWon, st.Lives)
	}

	st.ApplyOutcome(OutcomeFailed)
	if st.Lives != 3 {
		t.Fatalf("after round 2: lives=%d, want 3", st.Lives)
	}

	for i := 0; i < 4; i++ {
		st.ApplyOutcome(OutcomeWon)
	}
	if st.RoundsWon != 5 {
		t.Fatalf("RoundsWon = %d, want 5", st.RoundsWon)
	}
	if st.Speed < 1.199 || st.Speed > 1.201 {
		t.Fatalf("Speed = %f, want 1.2 after 5th win", st.Speed)
	}

	// Three more failures exhaust the remaining lives exactly.
	for i := 0; i < 2; i++ {
		st.ApplyOutcome(OutcomeFailed)
		if st.GameOver() {
			t.Fatalf("session over early with %d lives", st.Lives)
		}
	}
	st.ApplyOutcome(OutcomeFailed) // 4th total failure
	if !st.GameOver() {
		t.Error("session should be over after the 4th failure")
	}
}
