// Package service implements lead import and listing.
package service

import (
	"context"
	"io"

	"leadscoring_backend/internal/events"
	"leadscoring_backend/internal/leads/repository"
)

// Service manages the lead inventory scored against the current offer.
type Service struct {
	repo repository.LeadsRepository
	bus  events.Bus
}

// New creates a new leads service.
func New(repo repository.LeadsRepository, bus events.Bus) *Service {
	return &Service{repo: repo, bus: bus}
}

// ImportCSV parses a lead CSV and persists every row. The upload is
// all-or-nothing: any invalid row rejects the whole file.
func (s *Service) ImportCSV(ctx context.Context, r io.Reader, fileName string) ([]repository.Lead, error) {
	params, err := parseLeadsCSV(r)
	if err != nil {
		return nil, err
	}

	leads, err := s.repo.InsertBatch(ctx, params)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.LeadsImported{
		BaseEvent: events.NewBaseEvent(),
		Count:     len(leads),
		FileName:  fileName,
	})

	return leads, nil
}

// List returns all stored leads in insertion order.
func (s *Service) List(ctx context.Context) ([]repository.Lead, error) {
	return s.repo.List(ctx)
}
