package domain

import "time"

// RoundResult is the outcome of a round from the challenger's side.
type RoundResult string

const (
	RoundResultWin  RoundResult = "win"
	RoundResultLose RoundResult = "lose"
	RoundResultDraw RoundResult = "draw"
)

// RoundRecord is a played round as stored in the history table.
type RoundRecord struct {
	ID         string                 `db:"id" json:"id"`
	Challenger string                 `db:"challenger" json:"challenger"`
	Opponent   string                 `db:"opponent" json:"opponent"`
	Result     RoundResult            `db:"result" json:"result"`
	Verb       string                 `db:"verb" json:"verb,omitempty"`
	ClientIP   string                 `db:"client_ip" json:"-"`
	Details    map[string]interface{} `db:"details" json:"details,omitempty"`
	CreatedAt  time.Time              `db:"created_at" json:"created_at"`
}
