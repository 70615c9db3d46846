// Package climb implements the ladder microgame: alternate left and
// right to haul yourself up the rungs before the countdown expires.
package climb

import (
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const rungs = 8

// Round tracks climb progress and which hand pulled last.
type Round struct {
	cfg      core.RuntimeConfig
	height   int
	lastSide core.Action
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "climb" }
func (r *Round) Title() string       { return "Ladder Climb" }
func (r *Round) Prompt() string      { return "CLIMB!" }
func (r *Round) Description() string { return "Alternate hands to reach the top." }
func (r *Round) Controls() string    { return "Left/Right - alternate" }

func (r *Round) Duration() time.Duration { return 4 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.height = 0
	r.lastSide = core.ActionNone
}

// Step climbs one rung per alternation. Repeating the same side does
// nothing, it neither climbs nor fails.
func (r *Round) Step(f core.Frame) core.Verdict {
	side := core.ActionNone
	if f.Input.Has(core.ActionLeft) {
		side = core.ActionLeft
	} else if f.Input.Has(core.ActionRight) {
		side = core.ActionRight
	}
	if side != core.ActionNone && side != r.lastSide {
		r.lastSide = side
		r.height++
	}
	if r.height >= rungs {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midX := dst.Width() / 2
	baseY := dst.Height() - 3

	for i := 0; i <= rungs; i++ {
		y := baseY - i*2
		dst.SetColored(midX-2, y, '║', core.ColorGray)
		dst.SetColored(midX+2, y, '║', core.ColorGray)
		dst.DrawHLine(midX-1, y, 3, '─', core.ColorGray)
		if y > 0 {
			dst.SetColored(midX-2, y-1, '║', core.ColorGray)
			dst.SetColored(midX+2, y-1, '║', core.ColorGray)
		}
	}

	climberY := baseY - r.height*2
	dst.SetColored(midX, climberY, '☺', core.ColorBrightGreen)
	dst.DrawTextColored(midX-2, baseY-rungs*2-1, "GOAL!", core.ColorBrightYellow)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("climb", func() registry.Round { return New() })
}
