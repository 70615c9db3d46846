// Package dodge implements the falling-debris microgame: weave between
// blocks raining from above and survive until the timer runs out.
package dodge

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const (
	playerChar = '☺'
	blockChar  = '▓'
	moveStep   = 2
	spawnEvery = 6 // ticks between block spawns
	fallEvery  = 3 // ticks between block drops of one row
)

type block struct {
	x, y int
}

// Round holds the state of one dodge attempt.
type Round struct {
	cfg     core.RuntimeConfig
	rng     *rand.Rand
	playerX int
	playerY int
	blocks  []block
}

// New creates a dodge round.
func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "dodge" }
func (r *Round) Title() string       { return "Debris Dodge" }
func (r *Round) Prompt() string      { return "DODGE!" }
func (r *Round) Description() string { return "Survive the falling blocks." }
func (r *Round) Controls() string    { return "Left/Right - move" }

func (r *Round) Duration() time.Duration { return 5 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	r.rng = rand.New(rand.NewSource(cfg.Seed))
	r.playerX = cfg.ScreenW / 2
	r.playerY = cfg.ScreenH - 3
	r.blocks = r.blocks[:0]
}

// Step spawns, drops and collides blocks. Surviving the full countdown
// wins; getting hit fails.
func (r *Round) Step(f core.Frame) core.Verdict {
	if f.Input.Has(core.ActionLeft) {
		r.playerX -= moveStep
	}
	if f.Input.Has(core.ActionRight) {
		r.playerX += moveStep
	}
	r.playerX = core.Clamp(r.playerX, 0, r.cfg.ScreenW-1)

	if f.Tick%spawnEvery == 0 {
		r.blocks = append(r.blocks, block{x: r.rng.Intn(r.cfg.ScreenW), y: 1})
	}

	if f.Tick%fallEvery == 0 {
		alive := r.blocks[:0]
		for _, b := range r.blocks {
			b.y++
			if b.y <= r.playerY+1 {
				alive = append(alive, b)
			}
		}
		r.blocks = alive
	}

	for _, b := range r.blocks {
		if b.y == r.playerY && b.x == r.playerX {
			return core.VerdictFailed
		}
	}

	if f.TicksLeft <= 0 {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawHLine(0, r.playerY+1, dst.Width(), '─', core.ColorGray)
	for _, b := range r.blocks {
		dst.SetColored(b.x, b.y, blockChar, core.ColorRed)
	}
	dst.SetColored(r.playerX, r.playerY, playerChar, core.ColorBrightGreen)
}

func (r *Round) Teardown() {
	r.blocks = nil
}

func init() {
	registry.Register("dodge", func() registry.Round { return New() })
}
