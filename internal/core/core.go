// Package core provides the fundamental types shared by rounds and the
// platform: the cell buffer rounds draw into, the input frame they consume,
// and the per-tick frame/verdict contract. It has no external dependencies
// (especially no Bubble Tea) so round logic stays pure and testable.
package core

// RuntimeConfig is passed to rounds at reset time. Rounds use it to adapt
// to the terminal size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Verdict is what a round reports after each simulation tick.
// VerdictPending means the round is still undecided; the first non-pending
// verdict a round reports is final.
type Verdict int

const (
	VerdictPending Verdict = iota
	VerdictWon
	VerdictFailed
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictPending:
		return "Pending"
	case VerdictWon:
		return "Won"
	case VerdictFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Frame carries everything a round needs for one simulation tick: the input
// gathered since the previous tick, how far into the round we are, and how
// many ticks remain before the countdown expires. Rounds with survival
// semantics declare their win from Step when TicksLeft reaches zero.
type Frame struct {
	Input     InputFrame
	Tick      int     // Ticks elapsed since the round became active
	TicksLeft int     // Ticks remaining before automatic failure
	Speed     float64 // Current session speed multiplier (>= 1.0)
}
