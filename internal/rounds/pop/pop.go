// Package pop implements the bubble-popping microgame: steer the pin to
// each bubble and pop all three before time runs out.
package pop

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

const bubbleCount = 3

type bubble struct {
	x, y   int
	popped bool
}

// Round tracks the pin cursor and the remaining bubbles.
type Round struct {
	cfg     core.RuntimeConfig
	pinX    int
	pinY    int
	bubbles []bubble
	left    int
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "pop" }
func (r *Round) Title() string       { return "Bubble Pop" }
func (r *Round) Prompt() string      { return "POP!" }
func (r *Round) Description() string { return "Pop every bubble with the pin." }
func (r *Round) Controls() string    { return "Arrows - move, Space - pop" }

func (r *Round) Duration() time.Duration { return 5 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	rng := rand.New(rand.NewSource(cfg.Seed))
	r.pinX = cfg.ScreenW / 2
	r.pinY = cfg.ScreenH - 3
	r.bubbles = r.bubbles[:0]
	for len(r.bubbles) < bubbleCount {
		b := bubble{
			x: 4 + rng.Intn(cfg.ScreenW-8),
			y: 2 + rng.Intn(cfg.ScreenH-8),
		}
		// Keep bubbles apart so the pin can't sweep two at once.
		clear := true
		for _, o := range r.bubbles {
			if core.Abs(o.x-b.x) < 6 && core.Abs(o.y-b.y) < 3 {
				clear = false
				break
			}
		}
		if clear {
			r.bubbles = append(r.bubbles, b)
		}
	}
	r.left = bubbleCount
}

func (r *Round) Step(f core.Frame) core.Verdict {
	if f.Input.Has(core.ActionLeft) {
		r.pinX -= 2
	}
	if f.Input.Has(core.ActionRight) {
		r.pinX += 2
	}
	if f.Input.Has(core.ActionUp) {
		r.pinY--
	}
	if f.Input.Has(core.ActionDown) {
		r.pinY++
	}
	r.pinX = core.Clamp(r.pinX, 0, r.cfg.ScreenW-1)
	r.pinY = core.Clamp(r.pinY, 1, r.cfg.ScreenH-2)

	if f.Input.Has(core.ActionPress) {
		for i := range r.bubbles {
			b := &r.bubbles[i]
			if b.popped {
				continue
			}
			if core.Abs(b.x-r.pinX) <= 1 && b.y == r.pinY {
				b.popped = true
				r.left--
			}
		}
	}

	if r.left == 0 {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	for _, b := range r.bubbles {
		if b.popped {
			dst.SetColored(b.x, b.y, '·', core.ColorGray)
			continue
		}
		dst.SetColored(b.x, b.y, '○', core.ColorCyan)
	}
	dst.SetColored(r.pinX, r.pinY, '+', core.ColorBrightYellow)
}

func (r *Round) Teardown() {
	r.bubbles = nil
}

func init() {
	registry.Register("pop", func() registry.Round { return New() })
}
