// Package repository persists scoring results.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScoreRecord is one persisted scoring outcome for a lead. Rescoring a
// lead replaces its previous record.
type ScoreRecord struct {
	LeadID            uuid.UUID
	OfferID           uuid.UUID
	RoleScore         int
	IndustryScore     int
	CompletenessScore int
	RuleScore         int
	AIScore           int
	FinalScore        int
	Intent            string
	Reasoning         string
	ScoredAt          time.Time
}

// Result is a score record joined with its lead's attributes, as served
// by the results endpoints.
type Result struct {
	LeadID            uuid.UUID
	Name              string
	Role              string
	Company           string
	Industry          string
	Location          string
	RoleScore         int
	IndustryScore     int
	CompletenessScore int
	RuleScore         int
	AIScore           int
	FinalScore        int
	Intent            string
	Reasoning         string
	ScoredAt          time.Time
}

// ScoresRepository defines persistence operations for scoring results.
type ScoresRepository interface {
	// UpsertBatch stores all records in one transaction, replacing any
	// existing record per lead.
	UpsertBatch(ctx context.Context, records []ScoreRecord) error
	// ListResults returns all persisted results ordered by final score
	// descending, ties broken by lead insertion order.
	ListResults(ctx context.Context) ([]Result, error)
}
