package handlers

import (
	"context"

	"rpsls/internal/domain"
	"rpsls/internal/game"
)

// RoundStore persists played rounds. *repository.RoundRepository implements it.
type RoundStore interface {
	Create(ctx context.Context, rec *domain.RoundRecord) error
	GetByID(ctx context.Context, id string) (*domain.RoundRecord, error)
}

// HandlerConfig holds configuration for handler
type HandlerConfig struct {
	// Source must be safe for concurrent use.
	Source        game.RandomSource
	OpponentRange game.IndexRange
}

type Handler struct {
	Rounds        RoundStore
	Source        game.RandomSource
	OpponentRange game.IndexRange
}

// NewHandler builds a handler. rounds may be nil, which disables history.
func NewHandler(rounds RoundStore, cfg HandlerConfig) *Handler {
	src := cfg.Source
	if src == nil {
		src = game.CryptoSource{}
	}
	return &Handler{
		Rounds:        rounds,
		Source:        src,
		OpponentRange: cfg.OpponentRange,
	}
}
