// Package transport defines the request/response shapes of the scoring API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"leadscoring_backend/internal/scoring/repository"
	"leadscoring_backend/internal/scoring/service"
)

// BreakdownResponse itemizes the rule sub-scores.
type BreakdownResponse struct {
	RoleScore         int `json:"role_score"`
	IndustryScore     int `json:"industry_score"`
	CompletenessScore int `json:"completeness_score"`
}

// ScoredLeadResponse is the API representation of one scoring result.
type ScoredLeadResponse struct {
	LeadID     uuid.UUID         `json:"lead_id"`
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Company    string            `json:"company"`
	Industry   string            `json:"industry"`
	Location   string            `json:"location"`
	RuleScore  int               `json:"rule_score"`
	AIScore    int               `json:"ai_score"`
	FinalScore int               `json:"final_score"`
	Intent     string            `json:"intent"`
	Reasoning  string            `json:"reasoning"`
	Breakdown  BreakdownResponse `json:"breakdown"`
	ScoredAt   time.Time         `json:"scored_at,omitempty"`
}

// ScoreRunResponse reports a completed scoring run.
type ScoreRunResponse struct {
	Scored  int                  `json:"scored"`
	Results []ScoredLeadResponse `json:"results"`
}

// FromScoredLead maps a freshly scored lead to its API shape.
func FromScoredLead(sl service.ScoredLead, scoredAt time.Time) ScoredLeadResponse {
	return ScoredLeadResponse{
		LeadID:     sl.Lead.ID,
		Name:       sl.Lead.Name,
		Role:       sl.Lead.Role,
		Company:    sl.Lead.Company,
		Industry:   sl.Lead.Industry,
		Location:   sl.Lead.Location,
		RuleScore:  sl.RuleScore,
		AIScore:    sl.AIScore,
		FinalScore: sl.FinalScore,
		Intent:     sl.Intent,
		Reasoning:  sl.Reasoning,
		Breakdown: BreakdownResponse{
			RoleScore:         sl.Breakdown.RoleScore,
			IndustryScore:     sl.Breakdown.IndustryScore,
			CompletenessScore: sl.Breakdown.CompletenessScore,
		},
		ScoredAt: scoredAt,
	}
}

// FromResult maps a persisted result to its API shape.
func FromResult(res repository.Result) ScoredLeadResponse {
	return ScoredLeadResponse{
		LeadID:     res.LeadID,
		Name:       res.Name,
		Role:       res.Role,
		Company:    res.Company,
		Industry:   res.Industry,
		Location:   res.Location,
		RuleScore:  res.RuleScore,
		AIScore:    res.AIScore,
		FinalScore: res.FinalScore,
		Intent:     res.Intent,
		Reasoning:  res.Reasoning,
		Breakdown: BreakdownResponse{
			RoleScore:         res.RoleScore,
			IndustryScore:     res.IndustryScore,
			CompletenessScore: res.CompletenessScore,
		},
		ScoredAt: res.ScoredAt,
	}
}

// FromResults maps a slice of persisted results.
func FromResults(results []repository.Result) []ScoredLeadResponse {
	responses := make([]ScoredLeadResponse, 0, len(results))
	for _, res := range results {
		responses = append(responses, FromResult(res))
	}
	return responses
}
