// Package stopbar implements the timing-bar microgame: a cursor sweeps
// back and forth along a bar; stop it inside the highlighted zone.
package stopbar

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const (
	barWidth  = 40
	zoneWidth = 6
)

// Round tracks the sweeping cursor and the target zone.
type Round struct {
	cfg    core.RuntimeConfig
	cursor int
	dir    int
	zoneX  int // zone start, relative to the bar
	step   int // ticks per cursor move, derived from speed
	wait   int
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "stopbar" }
func (r *Round) Title() string       { return "Stop the Bar" }
func (r *Round) Prompt() string      { return "STOP IT!" }
func (r *Round) Description() string { return "Halt the cursor inside the green zone." }
func (r *Round) Controls() string    { return "Space - stop" }

func (r *Round) Duration() time.Duration { return 4 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	rng := rand.New(rand.NewSource(cfg.Seed))
	r.cursor = 0
	r.dir = 1
	r.zoneX = 4 + rng.Intn(barWidth-zoneWidth-8)
	r.step = 0
	r.wait = 0
}

func (r *Round) inZone() bool {
	return r.cursor >= r.zoneX && r.cursor < r.zoneX+zoneWidth
}

// Step sweeps the cursor and resolves the first press. Pressing outside
// the zone fails; running out of time also fails.
func (r *Round) Step(f core.Frame) core.Verdict {
	if r.step == 0 {
		// Two full sweeps fit in the budget regardless of compression.
		r.step = core.Clamp(f.TicksLeft/(barWidth*4), 1, 4)
		r.wait = r.step
	}

	if f.Input.Has(core.ActionPress) {
		if r.inZone() {
			return core.VerdictWon
		}
		return core.VerdictFailed
	}

	r.wait--
	if r.wait <= 0 {
		r.wait = r.step
		r.cursor += r.dir
		if r.cursor <= 0 || r.cursor >= barWidth-1 {
			r.dir = -r.dir
		}
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	barX := (dst.Width() - barWidth) / 2
	midY := dst.Height() / 2

	dst.DrawHLine(barX, midY, barWidth, '─', core.ColorGray)
	dst.DrawHLine(barX+r.zoneX, midY, zoneWidth, '═', core.ColorBrightGreen)
	dst.SetColored(barX+r.cursor, midY-1, '▼', core.ColorBrightYellow)

	c := core.ColorGray
	if r.inZone() {
		c = core.ColorBrightGreen
	}
	dst.DrawTextCentered(midY+3, "SPACE", c)
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("stopbar", func() registry.Round { return New() })
}
