package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"rpsls/internal/game"
	"rpsls/internal/logger"
)

const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitInputRead    = 3
	ExitRandomSource = 4
)

var (
	ErrInputRead  = errors.New("reading input")
	ErrInputParse = errors.New("input could not be parsed")
)

// PrintMenu lists the choices with the index a player types to pick each.
func PrintMenu(w io.Writer) error {
	var b strings.Builder
	for _, c := range game.Choices() {
		fmt.Fprintf(&b, "\t%d.%s\n", c.Index(), c)
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// ReadChoice reads one line from r and maps its trimmed content to a Choice.
func ReadChoice(r io.Reader) (game.Choice, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("%w: %v", ErrInputRead, err)
	}

	text := strings.TrimSpace(line)
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputParse, text)
	}
	return game.FromIndex(n)
}

// PrintRound writes both picks and the result.
func PrintRound(w io.Writer, r *game.Round) error {
	var b strings.Builder
	fmt.Fprintf(&b, "User chose %s\n", r.Challenger)
	fmt.Fprintf(&b, "Robot chose %s\n\n", r.Opponent)

	switch r.Outcome.Winner {
	case game.SideChallenger:
		fmt.Fprintf(&b, "%s\n\nPlayer wins\n", r.Summary())
	case game.SideOpponent:
		fmt.Fprintf(&b, "%s\n\nRobot wins\n", r.Summary())
	default:
		fmt.Fprintf(&b, "%s\n", r.Summary())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Run plays a single round: menu, one line of input, the robot's draw and
// the result. Any failure ends the round; there is no re-prompt.
func Run(ctx context.Context, in io.Reader, out io.Writer, src game.RandomSource, opp game.IndexRange) (*game.Round, error) {
	if err := PrintMenu(out); err != nil {
		return nil, err
	}

	challenger, err := ReadChoice(in)
	if err != nil {
		return nil, err
	}

	round, err := game.Play(challenger, src, opp)
	if err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, logger.RoundIDKey{}, round.ID)
	logger.WithContext(ctx).Debug("round resolved",
		"challenger", round.Challenger.String(),
		"opponent", round.Opponent.String(),
		"result", string(round.Outcome.Result()),
		"opponent_range", opp.String(),
	)

	if err := PrintRound(out, round); err != nil {
		return nil, err
	}
	return round, nil
}

// ExitCode maps a Run error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrInputRead):
		return ExitInputRead
	case errors.Is(err, ErrInputParse), errors.Is(err, game.ErrInvalidChoiceIndex):
		return ExitInvalidInput
	case errors.Is(err, game.ErrRandomSourceInvalid):
		return ExitRandomSource
	default:
		return ExitFailure
	}
}
