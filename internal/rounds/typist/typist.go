// Package typist implements the word-typing microgame: type the shown
// three-letter word before time runs out. Wrong keys are ignored.
package typist

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

var words = []string{
	"cat", "dog", "sun", "fox", "owl", "bee", "jam", "ice",
	"sky", "map", "key", "hat", "zip", "box", "gem", "wax",
}

// Round tracks typing progress through the chosen word.
type Round struct {
	cfg   core.RuntimeConfig
	word  string
	typed int
}

func New() *Round { return &Round{} }

func (r *Round) ID() string          { return "typist" }
func (r *Round) Title() string       { return "Typist" }
func (r *Round) Prompt() string      { return "TYPE!" }
func (r *Round) Description() string { return "Type the word, letter by letter." }
func (r *Round) Controls() string    { return "Letter keys - type" }

func (r *Round) Duration() time.Duration { return 5 * time.Second }

func (r *Round) Reset(cfg core.RuntimeConfig) {
	r.cfg = cfg
	rng := rand.New(rand.NewSource(cfg.Seed))
	r.word = words[rng.Intn(len(words))]
	r.typed = 0
}

// Step advances through the word on matching runes. Uppercase input is
// accepted; anything else is ignored rather than punished.
func (r *Round) Step(f core.Frame) core.Verdict {
	for _, ru := range f.Input.Runes {
		if ru >= 'A' && ru <= 'Z' {
			ru += 'a' - 'A'
		}
		if r.typed < len(r.word) && ru == rune(r.word[r.typed]) {
			r.typed++
		}
	}
	if r.typed >= len(r.word) {
		return core.VerdictWon
	}
	return core.VerdictPending
}

func (r *Round) Render(dst *core.Screen) {
	dst.Clear()

	midY := dst.Height() / 2
	startX := dst.Width()/2 - len(r.word)

	for i, ru := range r.word {
		c := core.ColorWhite
		if i < r.typed {
			c = core.ColorBrightGreen
		} else if i == r.typed {
			c = core.ColorBrightYellow
		}
		dst.SetColored(startX+i*2, midY, ru, c)
	}
	if r.typed < len(r.word) {
		dst.SetColored(startX+r.typed*2, midY+1, '‾', core.ColorBrightYellow)
	}
}

func (r *Round) Teardown() {}

func init() {
	registry.Register("typist", func() registry.Round { return New() })
}
