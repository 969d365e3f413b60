package repository

import (
	"context"
	"encoding/json"
	"errors"

	"rpsls/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrRoundNotFound = errors.New("round not found")

type RoundRepository struct {
	db *pgxpool.Pool
}

func NewRoundRepository(db *pgxpool.Pool) *RoundRepository {
	return &RoundRepository{db: db}
}

// Create stores a played round
func (r *RoundRepository) Create(ctx context.Context, rec *domain.RoundRecord) error {
	detailsJSON, err := json.Marshal(rec.Details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	return r.db.QueryRow(ctx,
		`INSERT INTO rounds (id, challenger, opponent, result, verb, client_ip, details)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		rec.ID,
		rec.Challenger,
		rec.Opponent,
		rec.Result,
		rec.Verb,
		rec.ClientIP,
		detailsJSON,
	).Scan(&rec.CreatedAt)
}

// GetByID returns one round or ErrRoundNotFound
func (r *RoundRepository) GetByID(ctx context.Context, id string) (*domain.RoundRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id::text, challenger, opponent, result, verb, client_ip, details, created_at
		 FROM rounds
		 WHERE id = $1`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res, err := scanRounds(rows)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, ErrRoundNotFound
	}
	return res[0], nil
}

// Recent returns the latest rounds, newest first
func (r *RoundRepository) Recent(ctx context.Context, limit int) ([]*domain.RoundRecord, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := r.db.Query(ctx,
		`SELECT id::text, challenger, opponent, result, verb, client_ip, details, created_at
		 FROM rounds
		 ORDER BY created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRounds(rows)
}

func scanRounds(rows pgx.Rows) ([]*domain.RoundRecord, error) {
	var result []*domain.RoundRecord

	for rows.Next() {
		var (
			rec         domain.RoundRecord
			detailsJSON []byte
		)

		if err := rows.Scan(
			&rec.ID, &rec.Challenger, &rec.Opponent, &rec.Result,
			&rec.Verb, &rec.ClientIP, &detailsJSON, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}

		if len(detailsJSON) > 0 {
			_ = json.Unmarshal(detailsJSON, &rec.Details)
		}

		result = append(result, &rec)
	}

	return result, rows.Err()
}
