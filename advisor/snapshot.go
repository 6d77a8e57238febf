package advisor

// ActingContext is the legal-action envelope for hero's current turn.
type ActingContext struct {
	Capabilities Capabilities
	CallAmount   float64 // chips required to call, 0 when nothing is owed
	MinBet       float64
	MaxBet       float64 // table limit on a bet or raise; 0 means no limit beyond Stack
	Stack        float64 // chips hero can still commit; caps every sized action
}

// Snapshot is the read-only view of the hand the engine decides on.
type Snapshot struct {
	HeroTurn    bool
	Acting      *ActingContext // nil when the table offers no action
	HoleCards   []string
	BoardCards  []string
	TotalPot    float64
	BigBlind    float64 // advisory only
	ActiveSeats int
}

// Street represents the betting round implied by the board
type Street int

const (
	// PreFlop before any community cards
	PreFlop Street = iota
	// Flop after the first three community cards
	Flop
	// Turn after the fourth community card
	Turn
	// River after the fifth community card
	River
)

// String returns the string representation of a street
func (s Street) String() string {
	switch s {
	case PreFlop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Street infers the betting round from the number of board cards.
func (s Snapshot) Street() Street {
	switch n := len(s.BoardCards); {
	case n == 0:
		return PreFlop
	case n <= 3:
		return Flop
	case n == 4:
		return Turn
	default:
		return River
	}
}

// Opponents is the number of players hero is up against, never less than one.
func (s Snapshot) Opponents() int {
	return max(1, s.ActiveSeats-1)
}
