package rules

import (
	"testing"

	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
)

func fullLead(role, industry string) leadsrepo.Lead {
	return leadsrepo.Lead{
		Name:     "Ava Jones",
		Role:     role,
		Company:  "FlowMetrics",
		Industry: industry,
		Location: "Austin",
	}
}

func offerWithUseCases(useCases ...string) offersrepo.Offer {
	return offersrepo.Offer{
		Name:          "AI Outreach Automation",
		ValueProps:    []string{"24/7 outreach", "6x more meetings"},
		IdealUseCases: useCases,
	}
}

func TestEvaluate_CEOWithExactIndustryMatch_ScoresMaximum(t *testing.T) {
	lead := fullLead("CEO", "B2B SaaS")
	offer := offerWithUseCases("B2B SaaS mid-market", "Sales teams")

	b := Evaluate(lead, offer)

	if b.RoleScore != 20 {
		t.Fatalf("expected role score 20, got %d", b.RoleScore)
	}
	if b.IndustryScore != 20 {
		t.Fatalf("expected industry score 20, got %d", b.IndustryScore)
	}
	if b.CompletenessScore != 10 {
		t.Fatalf("expected completeness score 10, got %d", b.CompletenessScore)
	}
	if b.Total != 50 {
		t.Fatalf("expected total 50, got %d", b.Total)
	}
}

func TestEvaluate_DeveloperInRetail_ScoresCompletenessOnly(t *testing.T) {
	lead := fullLead("Developer", "Retail")
	offer := offerWithUseCases("B2B SaaS mid-market")

	b := Evaluate(lead, offer)

	if b.RoleScore != 0 {
		t.Fatalf("expected role score 0, got %d", b.RoleScore)
	}
	if b.IndustryScore != 0 {
		t.Fatalf("expected industry score 0, got %d", b.IndustryScore)
	}
	if b.CompletenessScore != 10 {
		t.Fatalf("expected completeness score 10, got %d", b.CompletenessScore)
	}
	if b.Total != 10 {
		t.Fatalf("expected total 10, got %d", b.Total)
	}
}

func TestEvaluate_RoleMatchingBothKeywordSets_ScoresAsDecisionMaker(t *testing.T) {
	// "Senior Director of Sales" contains "senior" (influencer) and
	// "director" (decision maker); decision maker must win.
	b := Evaluate(fullLead("Senior Director of Sales", "Retail"), offerWithUseCases("Retail analytics"))

	if b.RoleScore != 20 {
		t.Fatalf("expected role score 20 for mixed-keyword role, got %d", b.RoleScore)
	}
}

func TestEvaluate_InfluencerRole_ScoresTen(t *testing.T) {
	b := Evaluate(fullLead("Marketing Manager", "Retail"), offerWithUseCases("Finance"))

	if b.RoleScore != 10 {
		t.Fatalf("expected role score 10, got %d", b.RoleScore)
	}
}

func TestEvaluate_EmptyRole_ScoresZero(t *testing.T) {
	lead := fullLead("", "Retail")
	b := Evaluate(lead, offerWithUseCases("Retail analytics"))

	if b.RoleScore != 0 {
		t.Fatalf("expected role score 0 for empty role, got %d", b.RoleScore)
	}
	if b.CompletenessScore != 0 {
		t.Fatalf("expected completeness score 0 with blank role, got %d", b.CompletenessScore)
	}
}

func TestEvaluate_AdjacencyOnEarlyUseCaseShadowsLaterExactMatch(t *testing.T) {
	// The first use case triggers the adjacency keyword "tech" and
	// returns 10 before the second use case's exact match is reached.
	// Use-case order is part of the contract.
	lead := fullLead("CEO", "Healthcare")
	offer := offerWithUseCases("Health tech platforms", "Healthcare")

	b := Evaluate(lead, offer)

	if b.IndustryScore != 10 {
		t.Fatalf("expected industry score 10 from adjacency shadowing, got %d", b.IndustryScore)
	}

	// Reordering the use cases puts the exact match first.
	reordered := offerWithUseCases("Healthcare", "Health tech platforms")
	b = Evaluate(lead, reordered)

	if b.IndustryScore != 20 {
		t.Fatalf("expected industry score 20 with exact match first, got %d", b.IndustryScore)
	}
}

func TestEvaluate_AdjacencyFromLeadIndustry(t *testing.T) {
	b := Evaluate(fullLead("CEO", "Fintech"), offerWithUseCases("Insurance brokers"))

	if b.IndustryScore != 10 {
		t.Fatalf("expected industry score 10 for tech-adjacent industry, got %d", b.IndustryScore)
	}
}

func TestEvaluate_EmptyIndustryOrUseCases_ScoresZero(t *testing.T) {
	if b := Evaluate(fullLead("CEO", ""), offerWithUseCases("B2B SaaS")); b.IndustryScore != 0 {
		t.Fatalf("expected industry score 0 for empty industry, got %d", b.IndustryScore)
	}
	if b := Evaluate(fullLead("CEO", "B2B SaaS"), offerWithUseCases()); b.IndustryScore != 0 {
		t.Fatalf("expected industry score 0 for empty use cases, got %d", b.IndustryScore)
	}
}

func TestEvaluate_AnyBlankRequiredField_ZeroesCompleteness(t *testing.T) {
	base := fullLead("CEO", "B2B SaaS")
	offer := offerWithUseCases("B2B SaaS")

	blanks := []func(leadsrepo.Lead) leadsrepo.Lead{
		func(l leadsrepo.Lead) leadsrepo.Lead { l.Name = " "; return l },
		func(l leadsrepo.Lead) leadsrepo.Lead { l.Role = ""; return l },
		func(l leadsrepo.Lead) leadsrepo.Lead { l.Company = ""; return l },
		func(l leadsrepo.Lead) leadsrepo.Lead { l.Industry = "\t"; return l },
		func(l leadsrepo.Lead) leadsrepo.Lead { l.Location = ""; return l },
	}

	for i, blank := range blanks {
		if b := Evaluate(blank(base), offer); b.CompletenessScore != 0 {
			t.Fatalf("case %d: expected completeness score 0, got %d", i, b.CompletenessScore)
		}
	}

	if b := Evaluate(base, offer); b.CompletenessScore != 10 {
		t.Fatalf("expected completeness score 10 for a full lead, got %d", b.CompletenessScore)
	}
}

func TestEvaluate_TotalIsAlwaysComponentSum(t *testing.T) {
	leads := []leadsrepo.Lead{
		fullLead("CEO", "B2B SaaS"),
		fullLead("Developer", "Retail"),
		fullLead("Manager", "Fintech"),
		{Role: "Head of Growth"},
	}
	offer := offerWithUseCases("B2B SaaS mid-market", "Retail analytics")

	for i, lead := range leads {
		b := Evaluate(lead, offer)
		if b.Total != b.RoleScore+b.IndustryScore+b.CompletenessScore {
			t.Fatalf("case %d: total %d is not the sum of components %d+%d+%d",
				i, b.Total, b.RoleScore, b.IndustryScore, b.CompletenessScore)
		}
		if b.Total < 0 || b.Total > MaxTotal {
			t.Fatalf("case %d: total %d out of range", i, b.Total)
		}
	}
}
