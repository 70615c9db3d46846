// Package balance implements the tightrope microgame: a marker drifts
// randomly and must be nudged back so it stays inside the safe window.
package balance

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const (
	beamWidth  = 31
	windowHalf = 5 // safe window extends this far either side of center
)

// Round tracks the drifting marker as a float for sub-cell drift.
type Round struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	pos   float64 // offset from beam center
	drift float64
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "balance" }
func (r *Round) Title() string       { return "Tightrope" }
func (r *Round) Prompt() string      { return "BALANCE!" }
func (r *Round) Description() string { return "Keep the walker on the rope." }
func (r *Round) Controls() string    { return "Left/Right - lean" }

func (r *Round) Duration() time.Duration { return 5 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.pos = 0
	r.drift = 0.08
	if r.rng.Intn(2) == 0 {
		r.drift = -r.drift
	}
}

// Step applies drift plus player leaning. Drift direction flips at
// random so the player cannot hold one key and coast.
func (r *Round) Step(f core.Frame) core.Verdict {
	if r.rng.Intn(30) == 0 {
		r.drift = -r.drift
	}
	r.pos += r.drift

	if f.Input.Has(core.ActionLeft) {
		r.pos -= 0.5
	}
	if f.Input.Has(core.ActionRight) {
		r.pos += 0.5
	}

	if r.pos < -windowHalf || r.pos > windowHalf {
		return core.VerdictFailed
	}
	if f.TicksLeft <= 0 {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midX := dst.Width() / 2
	midY := dst.Height() / 2
	beamX := midX - beamWidth/2

	dst.DrawHLine(beamX, midY+1, beamWidth, '━', core.ColorGray)
	dst.DrawHLine(midX-windowHalf, midY+1, windowHalf*2+1, '━', core.ColorGreen)

	walker := '♦'
	x := midX + int(r.pos)
	c := core.ColorBrightGreen
	if core.Abs(int(r.pos)) >= windowHalf-1 {
		c = core.ColorBrightRed
	}
	dst.SetColored(x, midY, walker, c)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("balance", func() registry.Round { return New() })
}
