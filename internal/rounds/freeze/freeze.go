// Package freeze implements the don't-touch-anything microgame: any key
// pressed while the statue watches means instant failure.
package freeze

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

// Round fails on any input and wins when the countdown runs out.
type Round struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	eyeX  int
	blink int // ticks until the statue glances the other way
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "freeze" }
func (r *Round) Title() string       { return "Freeze" }
func (r *Round) Prompt() string      { return "DON'T MOVE!" }
func (r *Round) Description() string { return "Touch nothing until time runs out." }
func (r *Round) Controls() string    { return "Nothing. Hands off." }

func (r *Round) Duration() time.Duration { return 3 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.eyeX = -1
	r.blink = 0
}

// Step treats any action or printable key as movement. The glancing eye
// is pure decoration; only the input check decides the verdict.
func (r *Round) Step(f core.Frame) core.Verdict {
	if f.Input.Any() {
		return core.VerdictFailed
	}
	if r.blink <= 0 {
		r.eyeX = -r.eyeX
		r.blink = 20 + r.rng.Intn(30)
	}
	r.blink--
	if f.TicksLeft <= 0 {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midX := dst.Width() / 2
	midY := dst.Height() / 2
	eyes := "(o_o)"
	if r.eyeX > 0 {
		eyes = "(-_o)"
	}
	dst.DrawTextColored(midX-2, midY-2, eyes, core.ColorBrightWhite)
	dst.DrawTextColored(midX-2, midY-1, "/| |\\", core.ColorWhite)
	dst.DrawTextColored(midX-2, midY, " | | ", core.ColorWhite)
	dst.DrawTextCentered(midY+3, "the statue is watching", core.ColorGray)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("freeze", func() registry.Round { return New() })
}
