package session

import (
	"math/rand"
	"time"

	"github.com/vibeware/microware/internal/audio"
	"github.com/vibeware/microware/internal/core"
	"github.com/vibeware/microware/internal/registry"
)

// Runner owns one rush session end to end: it holds the State, asks the
// Selector for the next round, and hands out a fresh Controller per round
// until the lives run out. The platform loop drives the current controller
// and calls Next when it is done.
type Runner struct {
	state    *State
	selector *Selector
	rules    Rules
	rtc      core.RuntimeConfig
	cue      audio.Cue
	catalog  []string
	rng      *rand.Rand

	// create instantiates a round by ID. Defaults to registry.Create;
	// tests swap in stub factories.
	create func(id string) (registry.Round, error)

	current   *Controller
	currentID string
}

// NewRunner creates a session over the given catalog of round IDs.
// A zero seed falls back to the clock.
func NewRunner(rules Rules, rtc core.RuntimeConfig, cue audio.Cue, catalog []string) *Runner {
	if rtc.Seed == 0 {
		rtc.Seed = time.Now().UnixNano()
	}
	if cue == nil {
		cue = audio.Null{}
	}
	rng := rand.New(rand.NewSource(rtc.Seed))

	return &Runner{
		state:    NewState(rules, len(catalog)),
		selector: NewSelector(rng),
		rules:    rules,
		rtc:      rtc,
		cue:      cue,
		catalog:  catalog,
		rng:      rng,
		create:   registry.Create,
	}
}

// Next selects the next round and prepares its controller. Returns
// ErrNoRounds when the catalog is empty, and a registry error when a
// selected round cannot be instantiated.
func (r *Runner) Next() (*Controller, error) {
	id, err := r.selector.Pick(r.catalog, r.state)
	if err != nil {
		return nil, err
	}

	round, err := r.create(id)
	if err != nil {
		return nil, err
	}

	// Each round gets its own seed so replays within a session differ
	// but the whole session is reproducible from the session seed.
	rtc := r.rtc
	rtc.Seed = r.rng.Int63()

	r.current = NewController(round, r.state, r.rules, r.cue, rtc)
	r.currentID = id
	return r.current, nil
}

// Current returns the controller of the round in progress, or nil.
func (r *Runner) Current() *Controller { return r.current }

// CurrentID returns the ID of the round in progress, or "".
func (r *Runner) CurrentID() string { return r.currentID }

// State returns the shared session state.
func (r *Runner) State() *State { return r.state }

// Over reports whether the session has ended.
func (r *Runner) Over() bool { return r.state.GameOver() }
