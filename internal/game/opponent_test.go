package game

import (
	"errors"
	"math/rand"
	"testing"
)

// fixedSource always draws the same offset.
type fixedSource int

func (s fixedSource) Intn(n int) int { return int(s) }

func TestPickOpponent(t *testing.T) {
	got, err := PickOpponent(fixedSource(0), FullRange)
	if err != nil || got != Rock {
		t.Fatalf("PickOpponent full/0 = %v, %v; want Rock", got, err)
	}

	got, err = PickOpponent(fixedSource(0), LegacyRange)
	if err != nil || got != Paper {
		t.Fatalf("PickOpponent legacy/0 = %v, %v; want Paper", got, err)
	}

	got, err = PickOpponent(fixedSource(3), LegacyRange)
	if err != nil || got != Spock {
		t.Fatalf("PickOpponent legacy/3 = %v, %v; want Spock", got, err)
	}
}

func TestPickOpponentBadDraw(t *testing.T) {
	for _, s := range []fixedSource{-1, 5, 4} {
		if _, err := PickOpponent(s, LegacyRange); !errors.Is(err, ErrRandomSourceInvalid) {
			t.Fatalf("draw %d: err = %v; want ErrRandomSourceInvalid", s, err)
		}
	}
}

func TestIndexRangeValidate(t *testing.T) {
	bad := []IndexRange{{-1, 5}, {0, 6}, {3, 3}, {4, 2}}
	for _, r := range bad {
		if err := r.Validate(); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("%v.Validate() = %v; want ErrInvalidRange", r, err)
		}
	}
	for _, r := range []IndexRange{FullRange, LegacyRange, {2, 3}} {
		if err := r.Validate(); err != nil {
			t.Fatalf("%v.Validate() = %v", r, err)
		}
	}
}

func TestLegacyRangeNeverPicksRock(t *testing.T) {
	src := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		c, err := PickOpponent(src, LegacyRange)
		if err != nil {
			t.Fatalf("PickOpponent: %v", err)
		}
		if c == Rock {
			t.Fatalf("legacy range picked Rock")
		}
	}
}

func TestCryptoSourceStaysInRange(t *testing.T) {
	seen := make(map[Choice]bool)
	for i := 0; i < 1000; i++ {
		c, err := PickOpponent(CryptoSource{}, FullRange)
		if err != nil {
			t.Fatalf("PickOpponent: %v", err)
		}
		seen[c] = true
	}
	if len(seen) != 5 {
		t.Fatalf("crypto source covered %d choices in 1000 draws; want 5", len(seen))
	}
}

func TestCryptoSourceRejectsEmptyRange(t *testing.T) {
	if got := (CryptoSource{}).Intn(0); got != -1 {
		t.Fatalf("Intn(0) = %d; want -1", got)
	}
}
