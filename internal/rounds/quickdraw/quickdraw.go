// Package quickdraw implements the reaction microgame: wait for the
// signal, then fire before the countdown runs out. Firing early loses.
package quickdraw

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

// Round hides the signal tick until it fires.
type Round struct {
	cfg        core.RuntimeConfig
	rng        *rand.Rand
	signalTick int
	fired      bool
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "quickdraw" }
func (r *Round) Title() string       { return "Quickdraw" }
func (r *Round) Prompt() string      { return "WAIT FOR IT..." }
func (r *Round) Description() string { return "Fire on the signal, not before." }
func (r *Round) Controls() string    { return "Space - fire" }

func (r *Round) Duration() time.Duration { return 3 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.signalTick = -1
	r.fired = false
}

// Step arms the signal somewhere in the middle half of the budget on the
// first tick, then resolves the first press against it.
func (r *Round) Step(f core.Frame) core.Verdict {
	if r.signalTick < 0 {
		budget := f.Tick + f.TicksLeft
		r.signalTick = budget/4 + r.rng.Intn(budget/2)
	}
	r.fired = f.Tick >= r.signalTick
	if f.Input.Has(core.ActionPress) {
		if f.Tick >= r.signalTick {
			return core.VerdictWon
		}
		return core.VerdictFailed
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midY := dst.Height() / 2
	if r.fired {
		dst.DrawTextCentered(midY-1, "██████████", core.ColorBrightRed)
		dst.DrawTextCentered(midY, "  FIRE!  ", core.ColorBrightYellow)
		dst.DrawTextCentered(midY+1, "██████████", core.ColorBrightRed)
	} else {
		dst.DrawTextCentered(midY, "· · · steady · · ·", core.ColorGray)
	}
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("quickdraw", func() registry.Round { return New() })
}
