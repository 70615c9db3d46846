// Package sequence implements the arrow-memory microgame: press the
// shown three arrows in order. One wrong arrow ends the round.
package sequence

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const seqLen = 3

var arrows = map[core.Action]rune{
	core.ActionLeft:  '←',
	core.ActionRight: '→',
	core.ActionUp:    '↑',
	core.ActionDown:  '↓',
}

var directions = []core.Action{
	core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown,
}

// Round holds the target sequence and how far the player has matched it.
type Round struct {
	cfg     core.RuntimeConfig
	seq     []core.Action
	matched int
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "sequence" }
func (r *Round) Title() string       { return "Simon Says" }
func (r *Round) Prompt() string      { return "REPEAT!" }
func (r *Round) Description() string { return "Press the arrows in the shown order." }
func (r *Round) Controls() string    { return "Arrow keys - repeat the pattern" }

func (r *Round) Duration() time.Duration { return 4 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	rng := rand.New(rand.NewSource(cfg.Seed))
	r.seq = r.seq[:0]
	for i := 0; i < seqLen; i++ {
		r.seq = append(r.seq, directions[rng.Intn(len(directions))])
	}
	r.matched = 0
}

// Step consumes at most one direction per tick. A press that is not the
// next expected arrow fails immediately.
func (r *Round) Step(f core.Frame) core.Verdict {
	var pressed core.Action
	for _, d := range directions {
		if f.Input.Has(d) {
			pressed = d
			break
		}
	}
	if pressed != core.ActionNone {
		if pressed == r.seq[r.matched] {
			r.matched++
			if r.matched >= seqLen {
				return core.VerdictWon
			}
		} else {
			return core.VerdictFailed
		}
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midY := dst.Height() / 2
	startX := dst.Width()/2 - seqLen*2 + 1

	for i, a := range r.seq {
		c := core.ColorWhite
		if i < r.matched {
			c = core.ColorBrightGreen
		} else if i == r.matched {
			c = core.ColorBrightYellow
		}
		dst.SetColored(startX+i*4, midY, arrows[a], c)
	}
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("sequence", func() registry.Round { return New() })
}
