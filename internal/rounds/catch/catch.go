// Package catch implements the falling-star microgame: slide the basket
// under the star before it hits the ground.
package catch

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const (
	basketWidth = 5
	basketStep  = 2
	starChar    = '✦'
)

// Round holds the state of one catch attempt.
type Round struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	basketX int
	starX   int
	starY   float64
	fallVel float64
	groundY int
}

// New creates a catch round.
func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "catch" }
func (r *Round) Title() string       { return "Star Catch" }
func (r *Round) Prompt() string      { return "CATCH!" }
func (r *Round) Description() string { return "Slide the basket under the falling star." }
func (r *Round) Controls() string    { return "Left/Right - move basket" }

func (r *Round) Duration() time.Duration { return 4 * time.Second }

// Reset places the basket center-bottom and drops the star from a random
// column away from the basket.
func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.groundY = cfg.ScreenH - 2
	r.basketX = cfg.ScreenW/2 - basketWidth/2
	r.starX = 2 + r.rng.Intn(core.Clamp(cfg.ScreenW-4, 1, cfg.ScreenW))
	r.starY = 1
	r.fallVel = 0 // computed on the first step, from the real tick budget
}

// Step moves the basket and the star. Touching the basket wins, touching
// the ground anywhere else fails.
func (r *Round) Step(f core.Frame) core.Verdict {
	if r.fallVel == 0 {
		// Land with a small margin before the countdown expires, however
		// compressed the budget is.
		ticks := float64(f.TicksLeft) * 0.8
		if ticks < 1 {
			ticks = 1
		}
		r.fallVel = (float64(r.groundY) - r.starY) / ticks
	}

	if f.Input.Has(core.ActionLeft) {
		r.basketX -= basketStep
	}
	if f.Input.Has(core.ActionRight) {
		r.basketX += basketStep
	}
	r.basketX = core.Clamp(r.basketX, 0, r.cfg.ScreenW-basketWidth)

	r.starY += r.fallVel

	if int(r.starY) >= r.groundY {
		if r.starX >= r.basketX && r.starX < r.basketX+basketWidth {
			return core.VerdictWon
		}
		return core.VerdictFailed
	}
	return core.VerdictPending
}

// Render draws the star, the basket and the ground.
func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, r.groundY+1, dst.Width(), '═', core.ColorGray)
	dst.SetColored(r.starX, int(r.starY), starChar, core.ColorBrightYellow)

	dst.SetColored(r.basketX, r.groundY, '\\', core.ColorCyan)
	dst.DrawHLine(r.basketX+1, r.groundY, basketWidth-2, '_', core.ColorCyan)
	dst.SetColored(r.basketX+basketWidth-1, r.groundY, '/', core.ColorCyan)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("catch", func() registry.Round { return New() })
}
