package intent

import (
	"strings"
	"testing"

	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
)

func heuristicLead(role, industry string) leadsrepo.Lead {
	return leadsrepo.Lead{
		Name:     "Sam Price",
		Role:     role,
		Company:  "Northwind",
		Industry: industry,
		Location: "Berlin",
	}
}

func heuristicOffer(useCases ...string) offersrepo.Offer {
	return offersrepo.Offer{Name: "Outreach", IdealUseCases: useCases}
}

func TestHeuristic_StrongRoleAndIndustryMatch_High(t *testing.T) {
	res := Heuristic(
		heuristicLead("Director of Operations", "SaaS"),
		heuristicOffer("B2B SaaS mid-market"),
	)

	if res.Intent != High {
		t.Fatalf("expected intent High, got %q", res.Intent)
	}
	if res.Score != 50 {
		t.Fatalf("expected score 50, got %d", res.Score)
	}
	if !strings.Contains(res.Reasoning, "Heuristic") {
		t.Fatalf("expected reasoning to identify itself as heuristic, got %q", res.Reasoning)
	}
}

func TestHeuristic_OnlyStrongRole_Medium(t *testing.T) {
	res := Heuristic(heuristicLead("CTO", "Agriculture"), heuristicOffer("B2B SaaS mid-market"))

	if res.Intent != Medium || res.Score != 30 {
		t.Fatalf("expected Medium/30, got %q/%d", res.Intent, res.Score)
	}
}

func TestHeuristic_OnlyIndustryMatch_Medium(t *testing.T) {
	res := Heuristic(heuristicLead("Analyst", "SaaS"), heuristicOffer("B2B SaaS mid-market"))

	if res.Intent != Medium || res.Score != 30 {
		t.Fatalf("expected Medium/30, got %q/%d", res.Intent, res.Score)
	}
}

func TestHeuristic_NoSignals_Low(t *testing.T) {
	res := Heuristic(heuristicLead("Analyst", "Agriculture"), heuristicOffer("B2B SaaS mid-market"))

	if res.Intent != Low || res.Score != 10 {
		t.Fatalf("expected Low/10, got %q/%d", res.Intent, res.Score)
	}
}

func TestHeuristic_Deterministic(t *testing.T) {
	lead := heuristicLead("Head of Sales", "SaaS")
	offer := heuristicOffer("B2B SaaS mid-market", "Sales teams")

	first := Heuristic(lead, offer)
	for i := 0; i < 10; i++ {
		if got := Heuristic(lead, offer); got != first {
			t.Fatalf("run %d: expected %+v, got %+v", i, first, got)
		}
	}
}

func TestHeuristic_IndustryMatchIsCaseInsensitiveSubstring(t *testing.T) {
	res := Heuristic(heuristicLead("Analyst", "saas"), heuristicOffer("B2B SaaS mid-market"))

	if res.Intent != Medium {
		t.Fatalf("expected Medium for case-insensitive industry substring, got %q", res.Intent)
	}
}
