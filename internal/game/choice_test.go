package game

import (
	"errors"
	"testing"
)

func TestFromIndex(t *testing.T) {
	cases := []struct {
		i    int
		want Choice
		name string
	}{
		{0, Rock, "Rock"},
		{1, Paper, "Paper"},
		{2, Scissors, "Scissors"},
		{3, Lizard, "Lizard"},
		{4, Spock, "Spock"},
	}

	for _, tc := range cases {
		got, err := FromIndex(tc.i)
		if err != nil {
			t.Fatalf("FromIndex(%d) error: %v", tc.i, err)
		}
		if got != tc.want {
			t.Fatalf("FromIndex(%d) = %v; want %v", tc.i, got, tc.want)
		}
		if got.String() != tc.name {
			t.Fatalf("FromIndex(%d).String() = %q; want %q", tc.i, got.String(), tc.name)
		}
	}
}

func TestFromIndexOutOfRange(t *testing.T) {
	for _, i := range []int{-1, 5, 100} {
		if _, err := FromIndex(i); !errors.Is(err, ErrInvalidChoiceIndex) {
			t.Fatalf("FromIndex(%d) err = %v; want ErrInvalidChoiceIndex", i, err)
		}
	}
}

func TestParseChoice(t *testing.T) {
	cases := map[string]Choice{
		"rock":      Rock,
		"PAPER":     Paper,
		" Scissors": Scissors,
		"lizard\n":  Lizard,
		"Spock":     Spock,
	}
	for in, want := range cases {
		got, err := ParseChoice(in)
		if err != nil || got != want {
			t.Fatalf("ParseChoice(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	if _, err := ParseChoice("well"); !errors.Is(err, ErrUnknownChoice) {
		t.Fatalf("ParseChoice(well) err = %v; want ErrUnknownChoice", err)
	}
}

func TestNoChoiceDefeatsItself(t *testing.T) {
	for _, c := range Choices() {
		if verb, ok := c.Defeats(c); ok {
			t.Fatalf("%v defeats itself with %q", c, verb)
		}
	}
}

func TestEveryDistinctPairHasOneWinner(t *testing.T) {
	for _, a := range Choices() {
		for _, b := range Choices() {
			if a == b {
				continue
			}
			_, ab := a.Defeats(b)
			_, ba := b.Defeats(a)
			if ab == ba {
				t.Fatalf("pair (%v,%v): a defeats b = %v, b defeats a = %v", a, b, ab, ba)
			}
		}
	}
}

func TestEachChoiceWinsAndLosesTwice(t *testing.T) {
	losses := make(map[Choice]int)
	for _, c := range Choices() {
		row := c.WinRelation()
		if row[0].Loser == row[1].Loser {
			t.Fatalf("%v beats %v twice", c, row[0].Loser)
		}
		for _, w := range row {
			if w.Loser == c {
				t.Fatalf("%v lists itself as a loser", c)
			}
			losses[w.Loser]++
		}
	}
	for _, c := range Choices() {
		if losses[c] != 2 {
			t.Fatalf("%v is defeated %d times; want 2", c, losses[c])
		}
	}
}

func TestDefeatsVerbs(t *testing.T) {
	cases := []struct {
		winner, loser Choice
		verb          string
	}{
		{Rock, Lizard, "crushes"},
		{Rock, Scissors, "crushes"},
		{Paper, Rock, "covers"},
		{Paper, Spock, "disproves"},
		{Scissors, Paper, "cuts"},
		{Scissors, Lizard, "decapitates"},
		{Lizard, Spock, "poisons"},
		{Lizard, Paper, "eats"},
		{Spock, Rock, "vaporizes"},
		{Spock, Scissors, "smashes"},
	}

	for _, tc := range cases {
		verb, ok := tc.winner.Defeats(tc.loser)
		if !ok || verb != tc.verb {
			t.Fatalf("%v.Defeats(%v) = %q, %v; want %q", tc.winner, tc.loser, verb, ok, tc.verb)
		}
	}
}

func TestWinRelationOrderIsStable(t *testing.T) {
	row := Paper.WinRelation()
	if row[0] != (Win{Rock, "covers"}) || row[1] != (Win{Spock, "disproves"}) {
		t.Fatalf("Paper.WinRelation() = %v", row)
	}
}
