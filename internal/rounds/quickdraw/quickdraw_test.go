package quickdraw

import (
	"testing"

	"github.com/vibeware/microware/internal/core"
)

const budget = 180

func testRTC() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
}

func frame(n int, in core.InputFrame) core.Frame {
	return core.Frame{Input: in, Tick: n, TicksLeft: budget - n, Speed: 1.0}
}

func press() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionPress)
	return f
}

func TestQuickdrawEarlyPressFails(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	r.Step(frame(0, core.NewInputFrame()))
	if r.signalTick <= 1 {
		t.Fatalf("signalTick = %d, want later than the opening ticks", r.signalTick)
	}
	if got := r.Step(frame(1, press())); got != core.VerdictFailed {
		t.Fatalf("press before the signal = %v, want failed", got)
	}
}

func TestQuickdrawPressAfterSignalWins(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	var got core.Verdict
	for n := 0; n < budget; n++ {
		in := core.NewInputFrame()
		if n > 0 && n >= r.signalTick {
			in = press()
		}
		got = r.Step(frame(n, in))
		if got != core.VerdictPending {
			break
		}
	}
	if got != core.VerdictWon {
		t.Fatalf("press on the signal = %v, want won", got)
	}
}

func TestQuickdrawSignalInsideBudget(t *testing.T) {
	r := New()
	r.Reset(testRTC())
	r.Step(frame(0, core.NewInputFrame()))
	if r.signalTick < budget/4 || r.signalTick >= budget*3/4 {
		t.Fatalf("signalTick = %d, want within the middle half of %d", r.signalTick, budget)
	}
}

func TestQuickdrawSeedDeterminism(t *testing.T) {
	a, b := New(), New()
	a.Reset(testRTC())
	b.Reset(testRTC())
	a.Step(frame(0, core.NewInputFrame()))
	b.Step(frame(0, core.NewInputFrame()))
	if a.signalTick != b.signalTick {
		t.Fatalf("same seed produced signal ticks %d and %d", a.signalTick, b.signalTick)
	}
}
