package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadscoring_backend/platform/apperr"
)

const offerNotFoundMessage = "no offer configured"

// Repo implements the OffersRepository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new offers repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements OffersRepository.
var _ OffersRepository = (*Repo)(nil)

// Create persists a new offer and returns it.
func (r *Repo) Create(ctx context.Context, params CreateParams) (Offer, error) {
	query := `
		INSERT INTO offers (name, value_props, ideal_use_cases)
		VALUES ($1, $2, $3)
		RETURNING id, name, value_props, ideal_use_cases, created_at`

	var offer Offer
	err := r.pool.QueryRow(ctx, query, params.Name, params.ValueProps, params.IdealUseCases).Scan(
		&offer.ID, &offer.Name, &offer.ValueProps, &offer.IdealUseCases, &offer.CreatedAt,
	)
	if err != nil {
		return Offer{}, fmt.Errorf("create offer: %w", err)
	}

	return offer, nil
}

// GetCurrent returns the most recently created offer.
func (r *Repo) GetCurrent(ctx context.Context) (Offer, error) {
	query := `
		SELECT id, name, value_props, ideal_use_cases, created_at
		FROM offers
		ORDER BY created_at DESC
		LIMIT 1`

	var offer Offer
	err := r.pool.QueryRow(ctx, query).Scan(
		&offer.ID, &offer.Name, &offer.ValueProps, &offer.IdealUseCases, &offer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Offer{}, apperr.NotFound(offerNotFoundMessage)
		}
		return Offer{}, fmt.Errorf("get current offer: %w", err)
	}

	return offer, nil
}
