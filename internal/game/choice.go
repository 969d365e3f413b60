package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidChoiceIndex is returned when an index falls outside 0..4.
var ErrInvalidChoiceIndex = errors.New("invalid choice index")

// ErrUnknownChoice is returned when a name matches none of the choices.
var ErrUnknownChoice = errors.New("unknown choice")

// Choice is one of the five hand signs. Its numeric value is the index
// shown to players.
type Choice int

const (
	Rock Choice = iota
	Paper
	Scissors
	Lizard
	Spock
)

const choiceCount = 5

var choiceNames = [choiceCount]string{
	"Rock",
	"Paper",
	"Scissors",
	"Lizard",
	"Spock",
}

// Win is one entry of a choice's win relation: the choice it beats and how.
type Win struct {
	Loser Choice `json:"loser"`
	Verb  string `json:"verb"`
}

// winRelation[c] lists the two choices c defeats.
var winRelation = [choiceCount][2]Win{
	Rock:     {{Lizard, "crushes"}, {Scissors, "crushes"}},
	Paper:    {{Rock, "covers"}, {Spock, "disproves"}},
	Scissors: {{Paper, "cuts"}, {Lizard, "decapitates"}},
	Lizard:   {{Spock, "poisons"}, {Paper, "eats"}},
	Spock:    {{Rock, "vaporizes"}, {Scissors, "smashes"}},
}

// FromIndex maps 0..4 to Rock, Paper, Scissors, Lizard and Spock.
func FromIndex(i int) (Choice, error) {
	c := Choice(i)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoiceIndex, i)
	}
	return c, nil
}

// ParseChoice matches a display name, ignoring case and surrounding space.
func ParseChoice(name string) (Choice, error) {
	name = strings.TrimSpace(name)
	for i, n := range choiceNames {
		if strings.EqualFold(n, name) {
			return Choice(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChoice, name)
}

// Choices returns every choice in index order.
func Choices() []Choice {
	return []Choice{Rock, Paper, Scissors, Lizard, Spock}
}

func (c Choice) Valid() bool {
	return c >= Rock && c <= Spock
}

func (c Choice) Index() int {
	return int(c)
}

func (c Choice) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Choice(%d)", int(c))
	}
	return choiceNames[c]
}

// WinRelation returns the two choices c defeats, in a fixed order.
func (c Choice) WinRelation() [2]Win {
	if !c.Valid() {
		return [2]Win{}
	}
	return winRelation[c]
}

// Defeats reports whether c beats other and, if so, the verb describing it.
func (c Choice) Defeats(other Choice) (string, bool) {
	if !c.Valid() {
		return "", false
	}
	for _, w := range winRelation[c] {
		if w.Loser == other {
			return w.Verb, true
		}
	}
	return "", false
}
