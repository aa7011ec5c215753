package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is a prospect record awaiting scoring. Identity is assigned here;
// the scoring engine treats a Lead as an immutable value.
type Lead struct {
	ID        uuid.UUID
	Name      string
	Role      string
	Company   string
	Industry  string
	Location  string
	Bio       string
	CreatedAt time.Time
}

// CreateParams contains the attributes of a lead to persist.
type CreateParams struct {
	Name     string
	Role     string
	Company  string
	Industry string
	Location string
	Bio      string
}

// LeadsRepository provides data access for leads.
type LeadsRepository interface {
	// InsertBatch persists leads in one transaction and returns them with IDs.
	InsertBatch(ctx context.Context, params []CreateParams) ([]Lead, error)
	// List returns all leads in insertion order.
	List(ctx context.Context) ([]Lead, error)
}
