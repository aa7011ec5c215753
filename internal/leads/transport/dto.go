// Package transport defines the request/response shapes of the leads API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"leadscoring_backend/internal/leads/repository"
)

// LeadResponse is the API representation of a lead.
type LeadResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Company   string    `json:"company"`
	Industry  string    `json:"industry"`
	Location  string    `json:"location"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadResponse reports the outcome of a CSV upload.
type UploadResponse struct {
	Imported int            `json:"imported"`
	Leads    []LeadResponse `json:"leads"`
}

// ToLeadResponse maps a repository lead to its API shape.
func ToLeadResponse(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:        lead.ID,
		Name:      lead.Name,
		Role:      lead.Role,
		Company:   lead.Company,
		Industry:  lead.Industry,
		Location:  lead.Location,
		Bio:       lead.Bio,
		CreatedAt: lead.CreatedAt,
	}
}

// ToLeadResponses maps a slice of repository leads to their API shape.
func ToLeadResponses(leads []repository.Lead) []LeadResponse {
	responses := make([]LeadResponse, 0, len(leads))
	for _, lead := range leads {
		responses = append(responses, ToLeadResponse(lead))
	}
	return responses
}
