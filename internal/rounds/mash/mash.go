// Package mash implements the button-mashing microgame: hammer the
// action key enough times before the countdown expires.
package mash

import (
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const target = 10

// Round counts presses toward the mash target.
type Round struct {
	cfg    core.RuntimeConfig
	count  int
	bounce int // frames left on the press animation
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "mash" }
func (r *Round) Title() string       { return "Mash It" }
func (r *Round) Prompt() string      { return "MASH!" }
func (r *Round) Description() string { return "Hammer the button ten times." }
func (r *Round) Controls() string    { return "Space - mash" }

func (r *Round) Duration() time.Duration { return 4 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.count = 0
	r.bounce = 0
}

func (r *Round) Step(f core.Frame) core.Verdict {
	if r.bounce > 0 {
		r.bounce--
	}
	if f.Input.Has(core.ActionPress) {
		r.count++
		r.bounce = 4
		if r.count >= target {
			return core.VerdictWon
		}
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midY := dst.Height() / 2
	barX := dst.Width()/2 - target
	for i := 0; i < target; i++ {
		seg := "░░"
		c := core.ColorGray
		if i < r.count {
			seg = "██"
			c = core.ColorBrightGreen
		}
		dst.DrawTextColored(barX+i*2, midY, seg, c)
	}

	btn := "[ SPACE ]"
	y := midY + 3
	if r.bounce > 0 {
		y++
	}
	dst.DrawTextCentered(y, btn, core.ColorBrightYellow)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("mash", func() registry.Round { return New() })
}
