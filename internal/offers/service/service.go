// Package service implements offer management.
package service

import (
	"context"
	"strings"

	"leadscoring_backend/internal/events"
	"leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/platform/apperr"
)

// Service manages the offer used as scoring context.
type Service struct {
	repo repository.OffersRepository
	bus  events.Bus
}

// New creates a new offers service.
func New(repo repository.OffersRepository, bus events.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// Create registers a new offer. The newest offer becomes the scoring
// context for subsequent batches.
func (s *Service) Create(ctx context.Context, params repository.CreateParams) (repository.Offer, error) {
	params.Name = strings.TrimSpace(params.Name)
	params.ValueProps = trimAll(params.ValueProps)
	params.IdealUseCases = trimAll(params.IdealUseCases)

	if params.Name == "" {
		return repository.Offer{}, apperr.Validation("offer name is required")
	}
	if len(params.ValueProps) == 0 {
		return repository.Offer{}, apperr.Validation("at least one value prop is required")
	}
	if len(params.IdealUseCases) == 0 {
		return repository.Offer{}, apperr.Validation("at least one ideal use case is required")
	}

	offer, err := s.repo.Create(ctx, params)
	if err != nil {
		return repository.Offer{}, err
	}

	s.bus.Publish(ctx, events.OfferCreated{
		BaseEvent: events.NewBaseEvent(),
		OfferID:   offer.ID,
		Name:      offer.Name,
	})

	return offer, nil
}

// GetCurrent returns the offer scoring batches run against.
func (s *Service) GetCurrent(ctx context.Context) (repository.Offer, error) {
	return s.repo.GetCurrent(ctx)
}

// trimAll trims entries and drops the ones that end up blank.
func trimAll(values []string) []string {
	results := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
