// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"leadscoring_backend/platform/events"
	"leadscoring_backend/platform/logger"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
	InMemoryBus = events.InMemoryBus
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// NewInMemoryBus creates a new in-memory event bus.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return events.NewInMemoryBus(log)
}

// =============================================================================
// Leads Domain Events
// =============================================================================

// LeadsImported is published when a CSV upload lands new leads.
type LeadsImported struct {
	BaseEvent
	Count    int    `json:"count"`
	FileName string `json:"fileName"`
}

func (e LeadsImported) EventName() string { return "leads.imported" }

// =============================================================================
// Offers Domain Events
// =============================================================================

// OfferCreated is published when a new offer becomes the scoring context.
type OfferCreated struct {
	BaseEvent
	OfferID uuid.UUID `json:"offerId"`
	Name    string    `json:"name"`
}

func (e OfferCreated) EventName() string { return "offers.created" }

// =============================================================================
// Scoring Domain Events
// =============================================================================

// LeadsScored is published when a scoring batch completes.
type LeadsScored struct {
	BaseEvent
	OfferID   uuid.UUID `json:"offerId"`
	LeadCount int       `json:"leadCount"`
}

func (e LeadsScored) EventName() string { return "scoring.leads.scored" }
