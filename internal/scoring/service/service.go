// Package service combines rule and intent scores and orchestrates
// batch scoring runs.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"leadscoring_backend/internal/events"
	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
	"leadscoring_backend/internal/scoring/intent"
	scoresrepo "leadscoring_backend/internal/scoring/repository"
	"leadscoring_backend/internal/scoring/rules"
	"leadscoring_backend/platform/apperr"
)

// DefaultConcurrency bounds the oracle fan-out per batch.
const DefaultConcurrency = 8

// ScoredLead is one lead's complete scoring outcome.
type ScoredLead struct {
	Lead       leadsrepo.Lead
	Breakdown  rules.Breakdown
	RuleScore  int
	AIScore    int
	FinalScore int
	Intent     string
	Reasoning  string
}

// Classifier is the intent side of scoring. *intent.Oracle satisfies it.
type Classifier interface {
	Classify(ctx context.Context, lead leadsrepo.Lead, offer offersrepo.Offer) (intent.Result, error)
}

// Service runs scoring batches and persists their results.
type Service struct {
	leads       leadsrepo.LeadsRepository
	offers      offersrepo.OffersRepository
	scores      scoresrepo.ScoresRepository
	oracle      Classifier
	bus         events.Bus
	concurrency int
}

// New creates a new scoring service. A concurrency of zero or less falls
// back to DefaultConcurrency.
func New(
	leads leadsrepo.LeadsRepository,
	offers offersrepo.OffersRepository,
	scores scoresrepo.ScoresRepository,
	oracle Classifier,
	bus events.Bus,
	concurrency int,
) *Service {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Service{
		leads:       leads,
		offers:      offers,
		scores:      scores,
		oracle:      oracle,
		bus:         bus,
		concurrency: concurrency,
	}
}

// Combine merges a rule breakdown and an intent result into a scored
// lead. The intent label comes from the intent layer alone; the rule
// layer only contributes points and the reasoning summary.
func Combine(lead leadsrepo.Lead, breakdown rules.Breakdown, res intent.Result) ScoredLead {
	return ScoredLead{
		Lead:       lead,
		Breakdown:  breakdown,
		RuleScore:  breakdown.Total,
		AIScore:    res.Score,
		FinalScore: breakdown.Total + res.Score,
		Intent:     res.Intent,
		Reasoning:  fmt.Sprintf("%s Rule signals: %s.", res.Reasoning, ruleSummary(breakdown)),
	}
}

// ruleSummary lists the nonzero sub-scores in role, industry,
// completeness order.
func ruleSummary(b rules.Breakdown) string {
	var parts []string
	if b.RoleScore > 0 {
		parts = append(parts, fmt.Sprintf("role match (%d pts)", b.RoleScore))
	}
	if b.IndustryScore > 0 {
		parts = append(parts, fmt.Sprintf("industry match (%d pts)", b.IndustryScore))
	}
	if b.CompletenessScore > 0 {
		parts = append(parts, fmt.Sprintf("data completeness (%d pts)", b.CompletenessScore))
	}
	if len(parts) == 0 {
		return "no rule matches"
	}
	return strings.Join(parts, ", ")
}

// ScoreBatch scores every lead against the offer. Output order matches
// input order regardless of oracle completion order. Any per-lead
// failure fails the whole batch; there is never a partial result.
func (s *Service) ScoreBatch(ctx context.Context, leads []leadsrepo.Lead, offer offersrepo.Offer) ([]ScoredLead, error) {
	scored := make([]ScoredLead, len(leads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, lead := range leads {
		g.Go(func() error {
			breakdown := rules.Evaluate(lead, offer)
			res, err := s.oracle.Classify(gctx, lead, offer)
			if err != nil {
				return fmt.Errorf("score lead %s: %w", lead.ID, err)
			}
			scored[i] = Combine(lead, breakdown, res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return scored, nil
}

// ScoreAll loads the current offer and all leads, scores them as one
// batch, and persists the results.
func (s *Service) ScoreAll(ctx context.Context) ([]ScoredLead, error) {
	offer, err := s.offers.GetCurrent(ctx)
	if err != nil {
		if apperr.GetKind(err) == apperr.KindNotFound {
			return nil, apperr.Conflict("no offer configured; create an offer before scoring")
		}
		return nil, err
	}

	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(leads) == 0 {
		return nil, apperr.BadRequest("no leads uploaded; upload leads before scoring")
	}

	scored, err := s.ScoreBatch(ctx, leads, offer)
	if err != nil {
		return nil, err
	}

	scoredAt := time.Now().UTC()
	records := make([]scoresrepo.ScoreRecord, 0, len(scored))
	for _, sl := range scored {
		records = append(records, scoresrepo.ScoreRecord{
			LeadID:            sl.Lead.ID,
			OfferID:           offer.ID,
			RoleScore:         sl.Breakdown.RoleScore,
			IndustryScore:     sl.Breakdown.IndustryScore,
			CompletenessScore: sl.Breakdown.CompletenessScore,
			RuleScore:         sl.RuleScore,
			AIScore:           sl.AIScore,
			FinalScore:        sl.FinalScore,
			Intent:            sl.Intent,
			Reasoning:         sl.Reasoning,
			ScoredAt:          scoredAt,
		})
	}
	if err := s.scores.UpsertBatch(ctx, records); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.LeadsScored{
		BaseEvent: events.NewBaseEvent(),
		OfferID:   offer.ID,
		LeadCount: len(scored),
	})

	return scored, nil
}

// Results returns persisted scoring results.
func (s *Service) Results(ctx context.Context) ([]scoresrepo.Result, error) {
	return s.scores.ListResults(ctx)
}
