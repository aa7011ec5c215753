package intent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leadscoring_backend/platform/logger"
)

type fakeProvider struct {
	reply string
	err   error
	// lastPrompt records what the oracle sent.
	lastPrompt string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	f.lastPrompt = prompt
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.reply, f.err
}

func TestClassify_NoProvider_UsesHeuristic(t *testing.T) {
	oracle := NewOracle(nil, logger.New("test"))

	res, err := oracle.Classify(context.Background(),
		heuristicLead("Director", "SaaS"),
		heuristicOffer("B2B SaaS mid-market"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != High || res.Score != 50 {
		t.Fatalf("expected heuristic High/50, got %q/%d", res.Intent, res.Score)
	}
}

func TestClassify_ProviderError_FallsBackWithoutError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	oracle := NewOracle(provider, logger.New("test"))

	res, err := oracle.Classify(context.Background(),
		heuristicLead("Analyst", "Agriculture"),
		heuristicOffer("B2B SaaS mid-market"),
	)
	if err != nil {
		t.Fatalf("provider failure must not surface as error, got %v", err)
	}
	if res.Intent != Low || res.Score != 10 {
		t.Fatalf("expected heuristic Low/10, got %q/%d", res.Intent, res.Score)
	}
}

func TestClassify_CancelledContext_ReturnsError(t *testing.T) {
	provider := &fakeProvider{err: context.Canceled}
	oracle := NewOracle(provider, logger.New("test"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := oracle.Classify(ctx, heuristicLead("CEO", "SaaS"), heuristicOffer("B2B SaaS"))
	if err == nil {
		t.Fatalf("expected error for cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestClassify_WellFormedReply_Parsed(t *testing.T) {
	provider := &fakeProvider{reply: "INTENT: High\nREASONING: Strong ICP fit."}
	oracle := NewOracle(provider, logger.New("test"))

	res, err := oracle.Classify(context.Background(),
		heuristicLead("Analyst", "Agriculture"),
		heuristicOffer("B2B SaaS mid-market"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != High || res.Score != 50 {
		t.Fatalf("expected High/50, got %q/%d", res.Intent, res.Score)
	}
	if res.Reasoning != "Strong ICP fit." {
		t.Fatalf("unexpected reasoning %q", res.Reasoning)
	}
}

func TestClassify_UnparseableReply_DefaultsToMediumSilently(t *testing.T) {
	provider := &fakeProvider{reply: "Looks like a decent lead to me."}
	oracle := NewOracle(provider, logger.New("test"))

	res, err := oracle.Classify(context.Background(),
		heuristicLead("CEO", "SaaS"),
		heuristicOffer("B2B SaaS mid-market"),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Intent != Medium || res.Score != 30 {
		t.Fatalf("expected Medium/30 default, got %q/%d", res.Intent, res.Score)
	}
}

func TestClassify_PromptEmbedsLeadAndOffer(t *testing.T) {
	provider := &fakeProvider{reply: "INTENT: Low\nREASONING: n/a"}
	oracle := NewOracle(provider, logger.New("test"))

	lead := heuristicLead("CEO", "SaaS")
	offer := heuristicOffer("B2B SaaS mid-market")
	offer.Name = "AI Outreach Automation"
	offer.ValueProps = []string{"24/7 outreach", "6x more meetings"}

	if _, err := oracle.Classify(context.Background(), lead, offer); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"AI Outreach Automation",
		"24/7 outreach, 6x more meetings",
		"B2B SaaS mid-market",
		lead.Name, lead.Role, lead.Company, lead.Industry, lead.Location,
		bioPlaceholder,
	} {
		if !strings.Contains(provider.lastPrompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, provider.lastPrompt)
		}
	}
}
