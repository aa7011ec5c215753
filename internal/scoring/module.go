// Package scoring provides the lead scoring bounded context module.
package scoring

import (
	"leadscoring_backend/internal/events"
	apphttp "leadscoring_backend/internal/http"
	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/internal/scoring/handler"
	"leadscoring_backend/internal/scoring/repository"
	"leadscoring_backend/internal/scoring/service"
	"leadscoring_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the scoring bounded context module implementing http.Module.
// It reads leads and the current offer through the other modules'
// repositories and owns the lead_scores table.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.ScoresRepository
}

// NewModule creates and initializes the scoring module with all its dependencies.
func NewModule(
	pool *pgxpool.Pool,
	leads leadsrepo.LeadsRepository,
	offers offersrepo.OffersRepository,
	oracle service.Classifier,
	eventBus events.Bus,
	log *logger.Logger,
	concurrency int,
) *Module {
	repo := repository.New(pool)
	svc := service.New(leads, offers, repo, oracle, eventBus, concurrency)
	h := handler.New(svc, log)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "scoring"
}

// Service returns the scoring service for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts scoring routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.V1.Group("/score"), ctx.V1.Group("/results"))
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
