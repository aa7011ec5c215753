// Command score-backfill rescores every stored lead against the current
// offer using the local heuristic for the intent layer. It needs no
// oracle credentials and is meant for offline repair after rule or
// heuristic changes.
package main

import (
	"context"
	"time"

	"leadscoring_backend/internal/config"
	"leadscoring_backend/internal/events"
	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/internal/scoring/intent"
	scoresrepo "leadscoring_backend/internal/scoring/repository"
	scoringsvc "leadscoring_backend/internal/scoring/service"
	"leadscoring_backend/platform/db"
	"leadscoring_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting lead score backfill")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	leadsRepo := leadsrepo.New(pool)
	offersRepo := offersrepo.New(pool)
	scoresRepo := scoresrepo.New(pool)

	// Nil provider forces the heuristic path for every lead.
	oracle := intent.NewOracle(nil, log)
	bus := events.NewInMemoryBus(log)
	svc := scoringsvc.New(leadsRepo, offersRepo, scoresRepo, oracle, bus, cfg.ScoringConcurrency)

	runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	scored, err := svc.ScoreAll(runCtx)
	if err != nil {
		log.Error("lead score backfill failed", "error", err)
		panic("lead score backfill failed: " + err.Error())
	}

	log.Info("lead score backfill completed", "scored", len(scored))
}
