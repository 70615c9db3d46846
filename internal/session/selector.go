package session

import (
	"errors"
	"math/rand"

	"github.com/samber/lo"
)

// ErrNoRounds is returned when the catalog is empty and nothing can be
// selected. The caller falls back to the menu.
var ErrNoRounds = errors.New("session: no rounds available")

// Selection weights. A round absent from the recency history gets the full
// weight; rounds in the history are weighted by how long ago they were
// played, and the immediately preceding round is excluded outright.
const (
	weightFresh    = 100
	weightPerStale = 20
)

// Selector picks the next round from the catalog with recency-weighted
// sampling: recent rounds are unlikely, the most recent one is impossible.
// The randomness source is injected so selection is reproducible in tests.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector around the given randomness source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick chooses one round ID from the catalog and records it in the state's
// recency history. Large catalogs use weighted sampling; catalogs small
// enough that the history would cover half of them fall back to a uniform
// choice that only excludes the immediately preceding round.
func (sel *Selector) Pick(catalog []string, st *State) (string, error) {
	if len(catalog) == 0 {
		return "", ErrNoRounds
	}
	if len(catalog) == 1 {
		st.recordPlayed(catalog[0])
		return catalog[0], nil
	}

	var chosen string
	if len(catalog) <= 2*st.HistorySize() {
		chosen = sel.pickUniform(catalog, st.LastRound())
	} else {
		chosen = sel.pickWeighted(catalog, st)
	}

	st.recordPlayed(chosen)
	return chosen, nil
}

// pickUniform draws uniformly from the catalog minus the last-played round.
func (sel *Selector) pickUniform(catalog []string, last string) string {
	candidates := lo.Filter(catalog, func(id string, _ int) bool {
		return id != last
	})
	if len(candidates) == 0 {
		candidates = catalog
	}
	return candidates[sel.rng.Intn(len(candidates))]
}

// pickWeighted samples by cumulative weight. The most recently played round
// weighs zero and can never win the draw; older history entries climb back
// toward the fresh weight as they age out of the window.
func (sel *Selector) pickWeighted(catalog []string, st *State) string {
	recent := st.Recent() // oldest first

	weightFor := func(id string) int {
		idx := -1
		for i, r := range recent {
			if r == id {
				idx = i
			}
		}
		if idx < 0 {
			return weightFresh
		}
		// stale = draws since this round was played; 0 = most recent.
		stale := len(recent) - 1 - idx
		return stale * weightPerStale
	}

	weights := lo.Map(catalog, func(id string, _ int) int { return weightFor(id) })
	total := lo.Sum(weights)
	if total == 0 {
		// Degenerate: everything is recent. Fall back to excluding only
		// the last round.
		return sel.pickUniform(catalog, st.LastRound())
	}

	draw := sel.rng.Intn(total)
	for i, w := range weights {
		if w == 0 {
			continue
		}
		draw -= w
		if draw < 0 {
			return catalog[i]
		}
	}
	// Unreachable while total matches the weights; keep the compiler and
	// the invariant honest.
	return catalog[len(catalog)-1]
}
