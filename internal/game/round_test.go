package game

import (
	"errors"
	"testing"
)

func TestPlay(t *testing.T) {
	r, err := Play(Scissors, fixedSource(0), FullRange)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if r.ID == "" {
		t.Fatalf("round has no id")
	}
	if r.Opponent != Rock || r.Outcome.Winner != SideOpponent || r.Outcome.Verb != "crushes" {
		t.Fatalf("round = %+v", r)
	}
	if got := r.Summary(); got != "Rock crushes Scissors" {
		t.Fatalf("Summary() = %q", got)
	}
	if r.Winner() != Rock || r.Loser() != Scissors {
		t.Fatalf("Winner/Loser = %v/%v", r.Winner(), r.Loser())
	}
}

func TestPlayTieSummary(t *testing.T) {
	r, err := Play(Lizard, fixedSource(3), FullRange)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if got := r.Summary(); got != "Lizard and Lizard tie" {
		t.Fatalf("Summary() = %q", got)
	}
	if r.Details()["result"] != "draw" {
		t.Fatalf("details = %v", r.Details())
	}
}

func TestPlayRejectsInvalidChallenger(t *testing.T) {
	if _, err := Play(Choice(9), fixedSource(0), FullRange); !errors.Is(err, ErrInvalidChoiceIndex) {
		t.Fatalf("err = %v; want ErrInvalidChoiceIndex", err)
	}
}

func TestPlayPropagatesBadDraw(t *testing.T) {
	if _, err := Play(Rock, fixedSource(7), FullRange); !errors.Is(err, ErrRandomSourceInvalid) {
		t.Fatalf("err = %v; want ErrRandomSourceInvalid", err)
	}
}

func TestDetails(t *testing.T) {
	r, err := Play(Paper, fixedSource(4), FullRange)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	d := r.Details()
	if d["challenger"] != "Paper" || d["opponent"] != "Spock" || d["verb"] != "disproves" || d["result"] != "win" {
		t.Fatalf("details = %v", d)
	}
	if d["winner"] != "challenger" {
		t.Fatalf("winner = %v", d["winner"])
	}
}
