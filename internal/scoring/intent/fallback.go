package intent

import (
	"strings"

	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
)

// strongRoleKeywords are the role signals the heuristic treats as a
// buying-intent indicator on their own.
var strongRoleKeywords = []string{"ceo", "cto", "founder", "director", "head"}

// Heuristic classifies a lead without an external provider. It is
// deterministic over (role, industry, ideal use cases) and each branch
// names itself as heuristic so results are distinguishable from
// model-derived ones by their reasoning text.
func Heuristic(lead leadsrepo.Lead, offer offersrepo.Offer) Result {
	strongRole := hasStrongRole(lead.Role)
	industryFit := industryMatchesUseCase(lead.Industry, offer.IdealUseCases)

	switch {
	case strongRole && industryFit:
		return Result{
			Intent:    High,
			Score:     ScoreFor(High),
			Reasoning: "Heuristic classification: senior decision-maker role in an industry matching the offer's ideal use cases.",
		}
	case strongRole || industryFit:
		return Result{
			Intent:    Medium,
			Score:     ScoreFor(Medium),
			Reasoning: "Heuristic classification: partial fit on role seniority or industry match.",
		}
	default:
		return Result{
			Intent:    Low,
			Score:     ScoreFor(Low),
			Reasoning: "Heuristic classification: no strong role or industry signals found.",
		}
	}
}

func hasStrongRole(role string) bool {
	role = strings.ToLower(strings.TrimSpace(role))
	if role == "" {
		return false
	}
	for _, kw := range strongRoleKeywords {
		if strings.Contains(role, kw) {
			return true
		}
	}
	return false
}

func industryMatchesUseCase(industry string, idealUseCases []string) bool {
	industry = strings.ToLower(strings.TrimSpace(industry))
	if industry == "" {
		return false
	}
	for _, uc := range idealUseCases {
		if strings.Contains(strings.ToLower(uc), industry) {
			return true
		}
	}
	return false
}
