// Package transport defines the request/response shapes of the offers API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"leadscoring_backend/internal/offers/repository"
)

// CreateOfferRequest is the payload for registering the offer leads are
// scored against.
type CreateOfferRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=200"`
	ValueProps    []string `json:"value_props" validate:"required,min=1,dive,required"`
	IdealUseCases []string `json:"ideal_use_cases" validate:"required,min=1,dive,required"`
}

// OfferResponse is the API representation of an offer.
type OfferResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	ValueProps    []string  `json:"value_props"`
	IdealUseCases []string  `json:"ideal_use_cases"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToOfferResponse maps a repository offer to its API shape.
func ToOfferResponse(offer repository.Offer) OfferResponse {
	return OfferResponse{
		ID:            offer.ID,
		Name:          offer.Name,
		ValueProps:    offer.ValueProps,
		IdealUseCases: offer.IdealUseCases,
		CreatedAt:     offer.CreatedAt,
	}
}
