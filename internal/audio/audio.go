// Package audio provides the sound cues fired at round boundaries.
// The cue sink is an explicit dependency injected into the session, so tests
// and the SSH path can swap in a silent implementation.
package audio

import "io"

// Cue receives notifications at well-defined session moments. Implementations
// must be cheap and must not block the tick loop.
type Cue interface {
	RoundStart()
	Win()
	Fail()
	GameOver()
}

// Null is a Cue that does nothing.
type Null struct{}

func (Null) RoundStart() {}
func (Null) Win()        {}
func (Null) Fail()       {}
func (Null) GameOver()   {}

// Bell rings the terminal bell on round outcomes. It is deliberately dumb:
// one BEL per event, no mixing, no state.
type Bell struct {
	w io.Writer
}

// NewBell creates a Bell writing to the given terminal writer.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) ring() {
	if b.w == nil {
		return
	}
	//nolint:errcheck // Best-effort; a lost bell is not an error.
	b.w.Write([]byte{'\a'})
}

func (b *Bell) RoundStart() { b.ring() }
func (b *Bell) Win()        { b.ring() }

func (b *Bell) Fail() {
	b.ring()
	b.ring()
}

func (b *Bell) GameOver() {
	b.ring()
	b.ring()
}
