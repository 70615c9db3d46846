// Package session implements the rush progression: the shared lives/score/
// speed state, the per-round controller state machine, and the anti-repeat
// round selector. Everything here is tick-driven and deterministic given a
// seed, so the whole progression can be exercised without a terminal.
package session

import "time"

// Rules are the tunables of a rush session. They are plain values: the
// config layer produces them, the session never reads files itself.
type Rules struct {
	// StartLives is the number of failures a player survives.
	StartLives int

	// ScoreIncrement is added to the score for every round won.
	ScoreIncrement int

	// SpeedStep is added to the speed multiplier every SpeedEvery-th win.
	SpeedStep float64

	// SpeedCap bounds the speed multiplier from above.
	SpeedCap float64

	// SpeedEvery is the win cadence for speed bumps.
	SpeedEvery int

	// PromptDelay is how long the round prompt stays on screen. Real time,
	// never compressed by the speed multiplier.
	PromptDelay time.Duration

	// ResolveDelay is how long the win/fail feedback flashes.
	ResolveDelay time.Duration

	// EndingDelay is the pause between applying the outcome and handing
	// control back to the selector.
	EndingDelay time.Duration

	// MinRoundTime is the floor a round's time budget never compresses
	// below, no matter the speed multiplier.
	MinRoundTime time.Duration
}

// DefaultRules returns the standard rush ruleset.
func DefaultRules() Rules {
	return Rules{
		StartLives:     4,
		ScoreIncrement: 100,
		SpeedStep:      0.2,
		SpeedCap:       3.0,
		SpeedEvery:     5,
		PromptDelay:    time.Second,
		ResolveDelay:   600 * time.Millisecond,
		EndingDelay:    900 * time.Millisecond,
		MinRoundTime:   1500 * time.Millisecond,
	}
}

// ticksFor converts a duration to a tick count at the given rate, with a
// floor of one tick so zero-length phases still pass through their state.
func ticksFor(d time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := int(d.Seconds() * float64(tickRate))
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}
