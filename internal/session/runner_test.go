package session

import (
	"testing"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

// drive runs the current controller to completion.
func drive(t *testing.T, c *Controller) {
	t.Helper()
	tickUntil(t, c, 10000, func() bool { return c.Done() })
}

func newStubRunner(t *testing.T, catalog []string, outcome core.Verdict) *Runner {
	t.Helper()
	r := NewRunner(DefaultRules(), testRTC(), nil, catalog)
	r.create = func(id string) (registry.Round, error) {
		return &stubRound{id: id, duration: 2 * time.Second, verdictAt: 3, verdict: outcome}, nil
	}
	return r
}

func TestRunnerEmptyCatalog(t *testing.T) {
	r := NewRunner(DefaultRules(), testRTC(), nil, nil)
	if _, err := r.Next(); err != ErrNoRounds {
		t.Errorf("Next on empty catalog: err = %v, want ErrNoRounds", err)
	}
}

func TestRunnerSessionEndsAfterFourFailures(t *testing.T) {
	r := newStubRunner(t, []string{"a", "b", "c", "d", "e", "f"}, core.VerdictFailed)

	rounds := 0
	for !r.Over() {
		c, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		drive(t, c)
		rounds++
		if rounds > 10 {
			t.Fatal("session did not end")
		}
	}

	if rounds != 4 {
		t.Errorf("session lasted %d rounds, want 4 (one per life)", rounds)
	}
	if r.State().Lives != 0 {
		t.Errorf("Lives = %d at game over, want 0", r.State().Lives)
	}
}

func TestRunnerWinningNeverEnds(t *testing.T) {
	r := newStubRunner(t, []string{"a", "b", "c", "d", "e", "f"}, core.VerdictWon)

	for i := 0; i < 25; i++ {
		c, err := r.Next()
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		drive(t, c)
		if r.Over() {
			t.Fatal("session ended despite only wins")
		}
	}

	st := r.State()
	if st.Score != 25*100 {
		t.Errorf("Score = %d, want 2500", st.Score)
	}
	if st.Speed <= 1.0 {
		t.Errorf("Speed = %f, should have stepped up by win 25", st.Speed)
	}
}

func TestRunnerNeverRepeatsImmediately(t *testing.T) {
	r := newStubRunner(t, []string{"a", "b", "c", "d", "e", "f", "g", "h"}, core.VerdictWon)

	prev := ""
	for i := 0; i < 40; i++ {
		if _, err := r.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		if r.CurrentID() == prev {
			t.Fatalf("round %q played twice in a row", prev)
		}
		prev = r.CurrentID()
		drive(t, r.Current())
	}
}

func TestRunnerReproducibleFromSeed(t *testing.T) {
	run := func() []string {
		r := newStubRunner(t, []string{"a", "b", "c", "d", "e", "f"}, core.VerdictWon)
		var picked []string
		for i := 0; i < 20; i++ {
			if _, err := r.Next(); err != nil {
				t.Fatalf("Next failed: %v", err)
			}
			picked = append(picked, r.CurrentID())
			drive(t, r.Current())
		}
		return picked
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("pick %d differs: %q vs %q", i, first[i], second[i])
		}
	}
}
