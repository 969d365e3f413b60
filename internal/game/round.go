package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Round is a single resolved game: the challenger's pick, the robot's draw
// and the outcome.
type Round struct {
	ID         string
	Challenger Choice
	Opponent   Choice
	Outcome    Outcome
	PlayedAt   time.Time
}

// Play draws the opponent from src within r and resolves it against
// challenger.
func Play(challenger Choice, src RandomSource, r IndexRange) (*Round, error) {
	if !challenger.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChoiceIndex, int(challenger))
	}
	opponent, err := PickOpponent(src, r)
	if err != nil {
		return nil, err
	}
	return &Round{
		ID:         uuid.NewString(),
		Challenger: challenger,
		Opponent:   opponent,
		Outcome:    Resolve(challenger, opponent),
		PlayedAt:   time.Now().UTC(),
	}, nil
}

// Winner and Loser return the winning and losing choice. On a tie both
// return the challenger's choice.
func (r *Round) Winner() Choice {
	if r.Outcome.Winner == SideOpponent {
		return r.Opponent
	}
	return r.Challenger
}

func (r *Round) Loser() Choice {
	if r.Outcome.Winner == SideOpponent {
		return r.Challenger
	}
	return r.Opponent
}

// Summary renders the round as "Rock crushes Scissors" or
// "Rock and Rock tie".
func (r *Round) Summary() string {
	if r.Outcome.IsTie() {
		return fmt.Sprintf("%s and %s tie", r.Challenger, r.Opponent)
	}
	return fmt.Sprintf("%s %s %s", r.Winner(), r.Outcome.Verb, r.Loser())
}

// Details returns the round for storage
func (r *Round) Details() map[string]interface{} {
	return map[string]interface{}{
		"challenger":       r.Challenger.String(),
		"challenger_index": r.Challenger.Index(),
		"opponent":         r.Opponent.String(),
		"opponent_index":   r.Opponent.Index(),
		"winner":           r.Outcome.Winner.String(),
		"verb":             r.Outcome.Verb,
		"result":           string(r.Outcome.Result()),
	}
}
