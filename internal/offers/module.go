// Package offers provides the offer management bounded context module.
package offers

import (
	"leadscoring_backend/internal/events"
	apphttp "leadscoring_backend/internal/http"
	"leadscoring_backend/internal/offers/handler"
	"leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/internal/offers/service"
	"leadscoring_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the offers bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.OffersRepository
}

// NewModule creates and initializes the offers module with all its dependencies.
func NewModule(pool *pgxpool.Pool, eventBus events.Bus, val *validator.Validator) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, eventBus)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "offers"
}

// Service returns the offers service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the offers repository for external use.
func (m *Module) Repository() repository.OffersRepository {
	return m.repo
}

// RegisterRoutes mounts offer routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/offer"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
