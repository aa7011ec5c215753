package intent

import (
	"fmt"
	"strings"

	leadsrepo "leadscoring_backend/internal/leads/repository"
	offersrepo "leadscoring_backend/internal/offers/repository"
)

// bioPlaceholder stands in for an absent bio so the prompt shape stays
// constant across leads.
const bioPlaceholder = "Not provided"

const promptTemplate = `You are a sales qualification assistant. Classify the buying intent of the following lead for the given product offer.

Product Offer:
- Name: %s
- Value Propositions: %s
- Ideal Use Cases: %s

Lead:
- Name: %s
- Role: %s
- Company: %s
- Industry: %s
- Location: %s
- Bio: %s

Classify the lead's buying intent as High, Medium, or Low and explain your classification in one or two sentences.

Respond in exactly this format:
INTENT: <High|Medium|Low>
REASONING: <your explanation>`

// BuildPrompt renders the classification prompt for one lead and offer.
func BuildPrompt(lead leadsrepo.Lead, offer offersrepo.Offer) string {
	bio := strings.TrimSpace(lead.Bio)
	if bio == "" {
		bio = bioPlaceholder
	}
	return fmt.Sprintf(promptTemplate,
		offer.Name,
		strings.Join(offer.ValueProps, ", "),
		strings.Join(offer.IdealUseCases, ", "),
		lead.Name,
		lead.Role,
		lead.Company,
		lead.Industry,
		lead.Location,
		bio,
	)
}
