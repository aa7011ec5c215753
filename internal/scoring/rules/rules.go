// Package rules computes the deterministic half of a lead's score from
// lead and offer attributes alone. Evaluation is a pure function with no
// error channel; a missing field degrades its sub-score to zero.
package rules

import (
	"strings"

	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
)

// Score points awarded per sub-dimension.
const (
	RoleDecisionMakerPoints = 20
	RoleInfluencerPoints    = 10
	IndustryExactPoints     = 20
	IndustryAdjacentPoints  = 10
	CompletenessPoints      = 10

	// MaxTotal is the ceiling of the rule layer.
	MaxTotal = RoleDecisionMakerPoints + IndustryExactPoints + CompletenessPoints
)

// decisionMakerKeywords marks roles with buying authority. Checked before
// influencerKeywords so a role matching both still scores as decision maker.
var decisionMakerKeywords = []string{
	"ceo", "cto", "cfo", "chief", "president", "director", "head",
	"founder", "owner", "vp", "vice president", "general manager",
	"managing director", "senior vice president",
}

var influencerKeywords = []string{
	"manager", "lead", "senior", "principal", "specialist",
	"architect", "coordinator", "supervisor", "administrator",
}

// adjacencyKeywords cover industries close enough to a software offer to
// earn partial industry credit without an exact use-case match.
var adjacencyKeywords = []string{"saas", "tech", "technology", "software"}

// Breakdown is the itemized rule score. Total is always the sum of the
// three components.
type Breakdown struct {
	RoleScore         int `json:"role_score"`
	IndustryScore     int `json:"industry_score"`
	CompletenessScore int `json:"completeness_score"`
	Total             int `json:"total"`
}

// Evaluate scores a lead against an offer on the rule dimensions.
func Evaluate(lead leadsrepo.Lead, offer offersrepo.Offer) Breakdown {
	b := Breakdown{
		RoleScore:         roleScore(lead.Role),
		IndustryScore:     industryScore(lead.Industry, offer.IdealUseCases),
		CompletenessScore: completenessScore(lead),
	}
	b.Total = b.RoleScore + b.IndustryScore + b.CompletenessScore
	return b
}

func roleScore(role string) int {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return 0
	}
	for _, kw := range decisionMakerKeywords {
		if strings.Contains(role, kw) {
			return RoleDecisionMakerPoints
		}
	}
	for _, kw := range influencerKeywords {
		if strings.Contains(role, kw) {
			return RoleInfluencerPoints
		}
	}
	return 0
}

// industryScore walks the use cases in order. Within each use case the
// exact bidirectional substring check runs first, then the adjacency
// check; either one returns immediately. An adjacency hit on an early use
// case therefore shadows an exact match on a later one. Use-case ordering
// is part of the contract.
func industryScore(industry string, idealUseCases []string) int {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" || len(idealUseCases) == 0 {
		return 0
	}
	for _, useCase := range idealUseCases {
		uc := strings.ToLower(strings.TrimSpace(useCase))
		if uc == "" {
			continue
		}
		if strings.Contains(uc, industry) || strings.Contains(industry, uc) {
			return IndustryExactPoints
		}
		for _, kw := range adjacencyKeywords {
			if strings.Contains(industry, kw) || strings.Contains(uc, kw) {
				return IndustryAdjacentPoints
			}
		}
	}
	return 0
}

func completenessScore(lead leadsrepo.Lead) int {
	fields := []string{lead.Name, lead.Role, lead.Company, lead.Industry, lead.Location}
	for _, f := range fields {
		if strings.TrimSpace(f) == "" {
			return 0
		}
	}
	return CompletenessPoints
}
