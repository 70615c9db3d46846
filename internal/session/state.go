package session

// Outcome is the result of one resolved round.
type Outcome int

const (
	OutcomeWon Outcome = iota
	OutcomeFailed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == OutcomeWon {
		return "Won"
	}
	return "Failed"
}

// State is the shared progression of a rush session: lives, score, speed
// and the recency history the selector uses to avoid repeats. It is owned
// by the Runner and mutated only through ApplyOutcome and recordPlayed;
// rounds never touch it.
type State struct {
	Lives        int
	Score        int
	Speed        float64
	RoundsWon    int
	RoundsPlayed int

	rules      Rules
	history    []string // recently played round IDs, oldest first
	historyMax int
	lastRound  string
}

// NewState creates the session state for a catalog of the given size.
// The recency window is min(3, catalogSize/2), so tiny catalogs keep no
// history at all and rely on the last-round exclusion only.
func NewState(rules Rules, catalogSize int) *State {
	historyMax := catalogSize / 2
	if historyMax > 3 {
		historyMax = 3
	}
	return &State{
		Lives:      rules.StartLives,
		Speed:      1.0,
		rules:      rules,
		historyMax: historyMax,
	}
}

// ApplyOutcome folds one resolved round into the progression. Wins add
// score and step the speed multiplier on the configured cadence; a fail
// costs a life. Lives never go below zero.
func (s *State) ApplyOutcome(o Outcome) {
	s.RoundsPlayed++

	if o == OutcomeWon {
		s.Score += s.rules.ScoreIncrement
		s.RoundsWon++
		if s.rules.SpeedEvery > 0 && s.RoundsWon%s.rules.SpeedEvery == 0 {
			s.Speed += s.rules.SpeedStep
			if s.Speed > s.rules.SpeedCap {
				s.Speed = s.rules.SpeedCap
			}
		}
		return
	}

	if s.Lives > 0 {
		s.Lives--
	}
}

// GameOver reports whether the session has ended.
func (s *State) GameOver() bool {
	return s.Lives == 0
}

// Recent returns a copy of the recency history, oldest first.
func (s *State) Recent() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// LastRound returns the ID of the immediately preceding round, or "".
// Kept even when the catalog is too small to maintain history.
func (s *State) LastRound() string {
	return s.lastRound
}

// HistorySize returns the recency window for this session's catalog.
func (s *State) HistorySize() int {
	return s.historyMax
}

// recordPlayed pushes a round ID into the recency history, evicting the
// oldest entry once the window is full. Called by the selector after every
// pick.
func (s *State) recordPlayed(id string) {
	s.lastRound = id
	if s.historyMax == 0 {
		return
	}
	s.history = append(s.history, id)
	if len(s.history) > s.historyMax {
		s.history = s.history[1:]
	}
}
