package session

import (
	"time"

	"github.com/vibeware/microware/internal/audio"
	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

// Phase is the lifecycle stage of one round.
type Phase int

const (
	PhaseInit Phase = iota
	PhasePrompt
	PhaseActive
	PhaseResolved
	PhaseEnding
	PhaseDone
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhasePrompt:
		return "Prompt"
	case PhaseActive:
		return "Active"
	case PhaseResolved:
		return "Resolved"
	case PhaseEnding:
		return "Ending"
	case PhaseDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Controller runs a single round through its lifecycle:
//
//	Init -> Prompt -> Active -> Resolved -> Ending -> Done
//
// It is driven by Tick calls from the platform loop; all delays are tick
// budgets computed up front, so tests advance time by calling Tick.
// The first outcome wins: once the round is resolved, later declarations
// are no-ops. Teardown of the round runs exactly once on every path,
// including Abort, and is guarded so a panicking cleanup cannot take the
// controller down with it.
type Controller struct {
	round registry.Round
	state *State
	rules Rules
	rtc   core.RuntimeConfig
	cue   audio.Cue

	phase      Phase
	won        bool
	failed     bool
	applied    bool
	toreDown   bool
	phaseTick  int
	activeTick int
	ticksLeft  int

	promptTicks  int
	activeTicks  int
	resolveTicks int
	endingTicks  int
}

// NewController prepares a controller for one play of the given round.
// The round's time budget is its base duration compressed by the session
// speed multiplier, floored at the rules' minimum.
func NewController(round registry.Round, st *State, rules Rules, cue audio.Cue, rtc core.RuntimeConfig) *Controller {
	if cue == nil {
		cue = audio.Null{}
	}

	budget := round.Duration()
	if st.Speed > 1.0 {
		budget = time.Duration(float64(budget) / st.Speed)
	}
	if budget < rules.MinRoundTime {
		budget = rules.MinRoundTime
	}

	c := &Controller{
		round: round,
		state: st,
		rules: rules,
		rtc:   rtc,
		cue:   cue,
		phase: PhaseInit,

		promptTicks:  ticksFor(rules.PromptDelay, rtc.TickRate),
		activeTicks:  ticksFor(budget, rtc.TickRate),
		resolveTicks: ticksFor(rules.ResolveDelay, rtc.TickRate),
		endingTicks:  ticksFor(rules.EndingDelay, rtc.TickRate),
	}
	c.ticksLeft = c.activeTicks
	return c
}

// Tick advances the round by one simulation step.
func (c *Controller) Tick(in core.InputFrame) {
	switch c.phase {
	case PhaseInit:
		c.won = false
		c.failed = false
		c.applied = false
		c.toreDown = false
		c.round.Reset(c.rtc)
		c.phase = PhasePrompt
		c.phaseTick = 0

	case PhasePrompt:
		// Purely presentational; input is dropped on the floor here.
		c.phaseTick++
		if c.phaseTick >= c.promptTicks {
			c.phase = PhaseActive
			c.phaseTick = 0
			c.cue.RoundStart()
		}

	case PhaseActive:
		c.activeTick++
		c.ticksLeft--

		verdict := c.round.Step(core.Frame{
			Input:     in,
			Tick:      c.activeTick,
			TicksLeft: c.ticksLeft,
			Speed:     c.state.Speed,
		})
		switch verdict {
		case core.VerdictWon:
			c.DeclareWin()
		case core.VerdictFailed:
			c.DeclareFail()
		}

		// The round's own verdict for this tick is applied first, so a
		// survival win at the moment of expiry beats the automatic fail.
		if c.ticksLeft <= 0 {
			c.DeclareFail()
		}

		if c.resolved() {
			c.enterResolved()
		}

	case PhaseResolved:
		c.phaseTick++
		if c.phaseTick >= c.resolveTicks {
			c.phase = PhaseEnding
			c.phaseTick = 0
			c.applyOutcome()
		}

	case PhaseEnding:
		c.phaseTick++
		if c.phaseTick >= c.endingTicks {
			c.phase = PhaseDone
		}

	case PhaseDone:
		// Terminal; extra ticks are harmless.
	}
}

// DeclareWin resolves the round as won. No-op if already resolved.
func (c *Controller) DeclareWin() {
	if c.resolved() {
		return
	}
	c.won = true
}

// DeclareFail resolves the round as failed. No-op if already resolved.
func (c *Controller) DeclareFail() {
	if c.resolved() {
		return
	}
	c.failed = true
}

// Abort forces the round to end without touching the session state.
// Used when the player backs out mid-round; teardown still runs.
func (c *Controller) Abort() {
	c.teardownOnce()
	c.phase = PhaseDone
}

func (c *Controller) resolved() bool {
	return c.won || c.failed
}

func (c *Controller) enterResolved() {
	c.phase = PhaseResolved
	c.phaseTick = 0
	c.teardownOnce()
	if c.won {
		c.cue.Win()
	} else {
		c.cue.Fail()
	}
}

// applyOutcome folds the fixed outcome into the session state, exactly once.
func (c *Controller) applyOutcome() {
	if c.applied {
		return
	}
	c.applied = true
	if c.won {
		c.state.ApplyOutcome(OutcomeWon)
	} else {
		c.state.ApplyOutcome(OutcomeFailed)
	}
	if c.state.GameOver() {
		c.cue.GameOver()
	}
}

// teardownOnce runs the round's cleanup exactly once. A panic inside the
// round's Teardown is swallowed: one round's cleanup bug must not corrupt
// the controller's own bookkeeping.
func (c *Controller) teardownOnce() {
	if c.toreDown {
		return
	}
	c.toreDown = true
	defer func() {
		_ = recover()
	}()
	c.round.Teardown()
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// Done reports whether the round has fully finished.
func (c *Controller) Done() bool { return c.phase == PhaseDone }

// Won reports whether the fixed outcome is a win.
func (c *Controller) Won() bool { return c.won }

// Failed reports whether the fixed outcome is a fail.
func (c *Controller) Failed() bool { return c.failed }

// Round returns the round being played.
func (c *Controller) Round() registry.Round { return c.round }

// Countdown returns the remaining fraction of the active time budget,
// in [0, 1]. Used for the on-screen timer bar.
func (c *Controller) Countdown() float64 {
	if c.activeTicks == 0 {
		return 0
	}
	f := float64(c.ticksLeft) / float64(c.activeTicks)
	return core.ClampF(f, 0, 1)
}
