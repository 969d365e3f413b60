package game

import "rpsls/internal/domain"

// Side identifies who won a round.
type Side int

const (
	SideNone Side = iota
	SideChallenger
	SideOpponent
)

func (s Side) String() string {
	switch s {
	case SideChallenger:
		return "challenger"
	case SideOpponent:
		return "opponent"
	default:
		return "none"
	}
}

// Outcome is the result of resolving two choices. Verb is empty on a tie.
type Outcome struct {
	Winner Side
	Verb   string
}

func (o Outcome) IsTie() bool {
	return o.Winner == SideNone
}

// Result maps the outcome to the challenger's win/lose/draw.
func (o Outcome) Result() domain.RoundResult {
	switch o.Winner {
	case SideChallenger:
		return domain.RoundResultWin
	case SideOpponent:
		return domain.RoundResultLose
	default:
		return domain.RoundResultDraw
	}
}

// Resolve decides a round. The challenger is checked first; the win relation
// never lets both sides match, so the order only matters as a convention.
func Resolve(challenger, opponent Choice) Outcome {
	if verb, ok := challenger.Defeats(opponent); ok {
		return Outcome{Winner: SideChallenger, Verb: verb}
	}
	if verb, ok := opponent.Defeats(challenger); ok {
		return Outcome{Winner: SideOpponent, Verb: verb}
	}
	return Outcome{Winner: SideNone}
}
