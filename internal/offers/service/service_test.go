package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/platform/apperr"
	"leadscoring_backend/platform/events"
	"leadscoring_backend/platform/logger"
)

type fakeOffersRepo struct {
	created repository.CreateParams
}

func (f *fakeOffersRepo) Create(ctx context.Context, params repository.CreateParams) (repository.Offer, error) {
	f.created = params
	return repository.Offer{
		ID:            uuid.New(),
		Name:          params.Name,
		ValueProps:    params.ValueProps,
		IdealUseCases: params.IdealUseCases,
	}, nil
}

func (f *fakeOffersRepo) GetCurrent(ctx context.Context) (repository.Offer, error) {
	return repository.Offer{}, apperr.NotFound("no offer configured")
}

func newTestService() (*Service, *fakeOffersRepo) {
	repo := &fakeOffersRepo{}
	return New(repo, events.NewInMemoryBus(logger.New("test"))), repo
}

func TestCreate_TrimsFieldsAndDropsBlankEntries(t *testing.T) {
	svc, repo := newTestService()

	offer, err := svc.Create(context.Background(), repository.CreateParams{
		Name:          "  AI Outreach Automation  ",
		ValueProps:    []string{" 24/7 outreach ", "", "6x more meetings"},
		IdealUseCases: []string{"B2B SaaS mid-market", "   "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if offer.Name != "AI Outreach Automation" {
		t.Fatalf("expected trimmed name, got %q", offer.Name)
	}
	if len(repo.created.ValueProps) != 2 {
		t.Fatalf("expected blank value props dropped, got %v", repo.created.ValueProps)
	}
	if len(repo.created.IdealUseCases) != 1 {
		t.Fatalf("expected blank use cases dropped, got %v", repo.created.IdealUseCases)
	}
}

func TestCreate_RejectsMissingName(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), repository.CreateParams{
		Name:          "   ",
		ValueProps:    []string{"x"},
		IdealUseCases: []string{"y"},
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreate_RejectsEmptySequences(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), repository.CreateParams{
		Name:          "Offer",
		ValueProps:    []string{"  "},
		IdealUseCases: []string{"B2B SaaS"},
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for empty value props, got %v", err)
	}

	_, err = svc.Create(context.Background(), repository.CreateParams{
		Name:          "Offer",
		ValueProps:    []string{"x"},
		IdealUseCases: nil,
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected validation error for empty use cases, got %v", err)
	}
}
