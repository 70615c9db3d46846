package catch

import (
	"testing"

	"github.com/vibeware/microware/internal/core"
)

func testRTC() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

// frame builds a Frame for tick n out of a fixed 200-tick budget.
func frame(n int, in core.InputFrame) core.Frame {
	return core.Frame{Input: in, Tick: n, TicksLeft: 200 - n, Speed: 1.0}
}

func TestCatchResetDeterministic(t *testing.T) {
	a, b := New(), New()
	a.Reset(testRTC())
	b.Reset(testRTC())
	if a.starX != b.starX {
		t.Fatalf("same seed produced star columns %d and %d", a.starX, b.starX)
	}
}

func TestCatchStarUnderBasketWins(t *testing.T) {
	r := New()
	r.Reset(testRTC())
	r.starX = r.basketX + basketWidth/2

	var got core.Verdict
	for n := 0; n < 400; n++ {
		got = r.Step(frame(n, core.NewInputFrame()))
		if got != core.VerdictPending {
			break
		}
	}
	if got != core.VerdictWon {
		t.Fatalf("verdict = %v, want won", got)
	}
}

func TestCatchStarMissesBasketFails(t *testing.T) {
	r := New()
	r.Reset(testRTC())
	r.starX = r.basketX + basketWidth + 10

	var got core.Verdict
	for n := 0; n < 400; n++ {
		got = r.Step(frame(n, core.NewInputFrame()))
		if got != core.VerdictPending {
			break
		}
	}
	if got != core.VerdictFailed {
		t.Fatalf("verdict = %v, want failed", got)
	}
}

func TestCatchBasketMovesAndClamps(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for n := 0; n < 60; n++ {
		r.Step(frame(n, left))
	}
	if r.basketX != 0 {
		t.Fatalf("basketX = %d after holding left, want 0", r.basketX)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for n := 60; n < 120; n++ {
		r.Step(frame(n, right))
	}
	if want := testRTC().ScreenW - basketWidth; r.basketX != want {
		t.Fatalf("basketX = %d after holding right, want %d", r.basketX, want)
	}
}

func TestCatchStarLandsBeforeBudget(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	done := -1
	for n := 0; n < 200; n++ {
		if r.Step(frame(n, core.NewInputFrame())) != core.VerdictPending {
			done = n
			break
		}
	}
	if done < 0 {
		t.Fatal("star never landed inside the tick budget")
	}
}

func TestCatchRender(t *testing.T) {
	r := New()
	r.Reset(testRTC())

	s := core.NewScreen(80, 24)
	r.Render(s)
	if s.Get(r.starX, int(r.starY)) != starChar {
		t.Fatal("star not drawn at its position")
	}
	if s.Get(r.basketX, r.groundY) != '\\' {
		t.Fatal("basket edge not drawn")
	}
}
