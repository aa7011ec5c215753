package intent

import (
	"regexp"
	"strings"
)

// unparseableReasoning is returned when the provider reply does not
// match the required format.
const unparseableReasoning = "Intent classified from model response (reasoning unavailable)."

var (
	intentPattern    = regexp.MustCompile(`(?im)^\s*INTENT:\s*(high|medium|low)\b`)
	reasoningPattern = regexp.MustCompile(`(?im)^\s*REASONING:\s*(.+)$`)
)

// ParseReply extracts a structured result from a provider reply. The
// second return value is false when the reply did not match the expected
// format; the result then carries the Medium default.
func ParseReply(reply string) (Result, bool) {
	intentMatch := intentPattern.FindStringSubmatch(reply)
	if intentMatch == nil {
		return Result{Intent: Medium, Score: ScoreFor(Medium), Reasoning: unparseableReasoning}, false
	}

	label := normalizeIntent(intentMatch[1])
	reasoning := unparseableReasoning
	if m := reasoningPattern.FindStringSubmatch(reply); m != nil {
		if text := strings.TrimSpace(m[1]); text != "" {
			reasoning = text
		}
	}

	return Result{Intent: label, Score: ScoreFor(label), Reasoning: reasoning}, true
}

func normalizeIntent(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return High
	case "low":
		return Low
	default:
		return Medium
	}
}
