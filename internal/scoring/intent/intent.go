// Package intent classifies a lead's buying readiness against an offer.
// Classification normally goes through an external language-model
// provider; when no provider is configured or the call fails, a local
// heuristic produces an equivalent result so callers never see a gap.
package intent

import (
	"context"
	"fmt"

	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/platform/logger"
)

// Intent labels in descending readiness order.
const (
	High   = "High"
	Medium = "Medium"
	Low    = "Low"
)

// Decoding settings for the provider call. Low temperature keeps the
// reply format stable across runs.
const (
	completionTemperature = 0.3
	completionMaxTokens   = 256
)

// Result is a structured intent classification.
type Result struct {
	Intent    string `json:"intent"`
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}

// ScoreFor maps an intent label to its numeric score. Unknown labels map
// to the Medium score.
func ScoreFor(intent string) int {
	switch intent {
	case High:
		return 50
	case Low:
		return 10
	default:
		return 30
	}
}

// Provider is a text-completion backend. Implementations must be safe
// for concurrent use.
type Provider interface {
	Name() string
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// Oracle classifies leads through a Provider, degrading to the local
// heuristic on any provider failure.
type Oracle struct {
	provider Provider
	log      *logger.Logger
}

// NewOracle creates an oracle backed by the given provider. A nil
// provider means no backend is configured and every classification uses
// the heuristic.
func NewOracle(provider Provider, log *logger.Logger) *Oracle {
	return &Oracle{provider: provider, log: log}
}

// Classify produces an intent result for a lead. It returns an error
// only when ctx is cancelled; every other failure resolves to the
// heuristic fallback.
func (o *Oracle) Classify(ctx context.Context, lead leadsrepo.Lead, offer offersrepo.Offer) (Result, error) {
	if o.provider == nil {
		o.log.OracleFallback("none", "not_configured", nil)
		return Heuristic(lead, offer), nil
	}

	prompt := BuildPrompt(lead, offer)
	reply, err := o.provider.Complete(ctx, prompt, completionTemperature, completionMaxTokens)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("intent classification cancelled: %w", ctx.Err())
		}
		o.log.OracleFallback(o.provider.Name(), "transport", err)
		return Heuristic(lead, offer), nil
	}

	result, ok := ParseReply(reply)
	if !ok {
		o.log.OracleFallback(o.provider.Name(), "parse", nil)
	}
	return result, nil
}
