package game

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrRandomSourceInvalid is returned when a draw lands outside the range it
// was asked for.
var ErrRandomSourceInvalid = errors.New("random source produced invalid index")

// ErrInvalidRange is returned for an opponent range that is empty or not
// within 0..5.
var ErrInvalidRange = errors.New("invalid opponent range")

// RandomSource draws an integer in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// CryptoSource draws from crypto/rand. A failed read yields -1, which
// PickOpponent reports as ErrRandomSourceInvalid.
type CryptoSource struct{}

func (CryptoSource) Intn(n int) int {
	if n <= 0 {
		return -1
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return -1
	}
	return int(v.Int64())
}

// IndexRange is the half-open range [Min, Max) of choice indices the
// opponent draws from.
type IndexRange struct {
	Min int
	Max int
}

var (
	// FullRange lets the opponent pick any of the five choices.
	FullRange = IndexRange{Min: 0, Max: choiceCount}
	// LegacyRange is [1,5): the opponent never picks Rock.
	LegacyRange = IndexRange{Min: 1, Max: choiceCount}
)

func (r IndexRange) Validate() error {
	if r.Min < 0 || r.Max > choiceCount || r.Min >= r.Max {
		return fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

func (r IndexRange) Contains(i int) bool {
	return i >= r.Min && i < r.Max
}

func (r IndexRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Min, r.Max)
}

// PickOpponent draws one index from src within r and maps it to a Choice.
func PickOpponent(src RandomSource, r IndexRange) (Choice, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	idx := r.Min + src.Intn(r.Max-r.Min)
	if !r.Contains(idx) {
		return 0, fmt.Errorf("%w: %d not in %s", ErrRandomSourceInvalid, idx, r)
	}
	c, err := FromIndex(idx)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSourceInvalid, err)
	}
	return c, nil
}
