package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Offer is the product/ICP context leads are scored against. One offer
// applies uniformly to every lead in a scoring batch.
type Offer struct {
	ID            uuid.UUID
	Name          string
	ValueProps    []string
	IdealUseCases []string
	CreatedAt     time.Time
}

// CreateParams contains parameters for creating an offer.
type CreateParams struct {
	Name          string
	ValueProps    []string
	IdealUseCases []string
}

// OffersRepository provides data access for offers.
type OffersRepository interface {
	// Create persists a new offer and returns it.
	Create(ctx context.Context, params CreateParams) (Offer, error)
	// GetCurrent returns the most recently created offer.
	GetCurrent(ctx context.Context) (Offer, error)
}
