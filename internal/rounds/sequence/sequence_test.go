package sequence

import (
	"testing"

	"github.com/vibeware/microware/internal/core"
)

func testRTC() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}
}

func dir(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

func TestSequenceCorrectOrderWins(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	var got core.Verdict
	for i, a := range r.seq {
		got = r.Step(core.Frame{Input: dir(a), Tick: i, TicksLeft: 200})
	}
	if got != core.VerdictWon {
		t.Fatalf("verdict after the full sequence = %v, want won", got)
	}
}

func TestSequenceWrongArrowFails(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	wrong := core.ActionLeft
	if r.seq[0] == core.ActionLeft {
		wrong = core.ActionRight
	}
	if got := r.Step(core.Frame{Input: dir(wrong), TicksLeft: 200}); got != core.VerdictFailed {
		t.Fatalf("wrong arrow = %v, want failed", got)
	}
}

func TestSequenceIdleStaysPending(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	for i := 0; i < 50; i++ {
		if got := r.Step(core.Frame{Input: core.NewInputFrame(), Tick: i, TicksLeft: 200 - i}); got != core.VerdictPending {
			t.Fatalf("idle tick resolved as %v", got)
		}
	}
}

func TestSequenceSeedDeterminism(t *testing.T) {
	a, b := New(), New()
	a.Reset(testRTC())
	b.Reset(testRTC())
	for i := range a.seq {
		if a.seq[i] != b.seq[i] {
			t.Fatalf("same seed produced different sequences: %v vs %v", a.seq, b.seq)
		}
	}
}
