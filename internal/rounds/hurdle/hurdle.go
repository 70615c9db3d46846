// Package hurdle implements the jump microgame: one obstacle slides in
// from the right; jump over it to win, clip it and you lose.
package hurdle

import (
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const (
	runnerX  = 12
	jumpVel  = -0.55
	gravity  = 0.045
	hurdleCh = '╫'
)

// Round tracks the runner's vertical motion and the approaching hurdle.
type Round struct {
	cfg      core.RuntimeConfig
	groundY  int
	y        float64 // runner offset above ground, <= 0 while airborne
	vy       float64
	hurdleX  float64
	hurdleVX float64
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "hurdle" }
func (r *Round) Title() string       { return "Hurdle" }
func (r *Round) Prompt() string      { return "JUMP!" }
func (r *Round) Description() string { return "Leap the hurdle as it arrives." }
func (r *Round) Controls() string    { return "Space - jump" }

func (r *Round) Duration() time.Duration { return 3 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.groundY = cfg.ScreenH - 4
	r.y = 0
	r.vy = 0
	r.hurdleX = float64(cfg.ScreenW - 2)
	r.hurdleVX = 0
}

// Step moves the hurdle toward the runner at a pace calibrated so it
// crosses the runner around two thirds of the budget.
func (r *Round) Step(f core.Frame) core.Verdict {
	if r.hurdleVX == 0 {
		ticks := float64(f.TicksLeft) * 0.66
		r.hurdleVX = (r.hurdleX - runnerX) / ticks
	}

	if f.Input.Has(core.ActionPress) && r.y == 0 {
		r.vy = jumpVel
	}
	r.vy += gravity
	r.y += r.vy
	if r.y > 0 {
		r.y = 0
		r.vy = 0
	}

	r.hurdleX -= r.hurdleVX
	hx := int(r.hurdleX)
	if hx == runnerX && int(r.y) >= -1 {
		return core.VerdictFailed
	}
	if hx < runnerX-1 {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, r.groundY+1, dst.Width(), '═', core.ColorGray)
	dst.SetColored(int(r.hurdleX), r.groundY, hurdleCh, core.ColorBrightRed)
	dst.SetColored(int(r.hurdleX), r.groundY-1, hurdleCh, core.ColorBrightRed)
	dst.SetColored(runnerX, r.groundY+int(r.y), '☺', core.ColorBrightGreen)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("hurdle", func() registry.Round { return New() })
}
