package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadscoring_backend/internal/config"
	"leadscoring_backend/internal/events"
	apphttp "leadscoring_backend/internal/http"
	"leadscoring_backend/internal/http/router"
	"leadscoring_backend/internal/leads"
	"leadscoring_backend/internal/offers"
	"leadscoring_backend/internal/scoring"
	"leadscoring_backend/internal/scoring/intent"
	"leadscoring_backend/migrations"
	"leadscoring_backend/platform/ai/gemini"
	"leadscoring_backend/platform/ai/moonshot"
	"leadscoring_backend/platform/db"
	"leadscoring_backend/platform/logger"
	"leadscoring_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg.DatabaseURL, migrations.FS)
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)
	registerEventLogging(eventBus, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Intent oracle provider, chosen once at boot
	provider := newIntentProvider(ctx, cfg, log)
	oracle := intent.NewOracle(provider, log)

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	offersModule := offers.NewModule(pool, eventBus, val)
	leadsModule := leads.NewModule(pool, eventBus)
	scoringModule := scoring.NewModule(
		pool,
		leadsModule.Repository(),
		offersModule.Repository(),
		oracle,
		eventBus,
		log,
		cfg.ScoringConcurrency,
	)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			offersModule,
			leadsModule,
			scoringModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// newIntentProvider builds the configured oracle backend. The preferred
// provider wins when its credential is usable; otherwise the alternate is
// tried; nil means the heuristic fallback handles every classification.
func newIntentProvider(ctx context.Context, cfg *config.Config, log *logger.Logger) intent.Provider {
	order := []string{cfg.OracleProvider, config.ProviderGemini, config.ProviderMoonshot}
	for _, name := range order {
		switch name {
		case config.ProviderGemini:
			if !cfg.GeminiConfigured() {
				continue
			}
			client, err := gemini.NewClient(ctx, gemini.Config{
				APIKey: cfg.GeminiAPIKey,
				Model:  cfg.GeminiModel,
			})
			if err != nil {
				log.Warn("gemini client initialization failed", "error", err)
				continue
			}
			log.Info("intent oracle provider selected", "provider", name)
			return client
		case config.ProviderMoonshot:
			if !cfg.MoonshotConfigured() {
				continue
			}
			client := moonshot.NewClient(moonshot.Config{
				APIKey:  cfg.MoonshotAPIKey,
				BaseURL: cfg.MoonshotBaseURL,
				Model:   cfg.MoonshotModel,
			})
			log.Info("intent oracle provider selected", "provider", name)
			return client
		}
	}

	log.Warn("no intent oracle configured; classifications will use the local heuristic")
	return nil
}

// registerEventLogging subscribes an audit log handler to the domain events.
func registerEventLogging(bus events.Bus, log *logger.Logger) {
	logHandler := events.HandlerFunc(func(ctx context.Context, e events.Event) error {
		log.WithContext(ctx).Info("domain event", "event", e.EventName())
		return nil
	})
	bus.Subscribe(events.OfferCreated{}.EventName(), logHandler)
	bus.Subscribe(events.LeadsImported{}.EventName(), logHandler)
	bus.Subscribe(events.LeadsScored{}.EventName(), logHandler)
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return errors.New(name + ": " + lastErr.Error())
}
