package handlers

import (
	"context"
	"time"

	"rpsls/internal/domain"
	"rpsls/internal/game"
	"rpsls/internal/logger"
)

// RecordRound writes a played round to history. It is a no-op when history
// is disabled.
func (h *Handler) RecordRound(round *game.Round, clientIP string) {
	if h.Rounds == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	rec := &domain.RoundRecord{
		ID:         round.ID,
		Challenger: round.Challenger.String(),
		Opponent:   round.Opponent.String(),
		Result:     round.Outcome.Result(),
		Verb:       round.Outcome.Verb,
		ClientIP:   clientIP,
		Details:    round.Details(),
	}
	if err := h.Rounds.Create(ctx, rec); err != nil {
		RoundsRecordFailed.Inc()
		logger.Error("failed to record round", "error", err, "round_id", round.ID)
	}
}
