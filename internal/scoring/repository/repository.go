package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the ScoresRepository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new scores repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements ScoresRepository.
var _ ScoresRepository = (*Repo)(nil)

// UpsertBatch stores score records in one transaction. A lead's previous
// record is replaced so the table holds at most one row per lead.
func (r *Repo) UpsertBatch(ctx context.Context, records []ScoreRecord) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin score upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO lead_scores (
			lead_id, offer_id, role_score, industry_score, completeness_score,
			rule_score, ai_score, final_score, intent, reasoning, scored_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (lead_id) DO UPDATE SET
			offer_id = EXCLUDED.offer_id,
			role_score = EXCLUDED.role_score,
			industry_score = EXCLUDED.industry_score,
			completeness_score = EXCLUDED.completeness_score,
			rule_score = EXCLUDED.rule_score,
			ai_score = EXCLUDED.ai_score,
			final_score = EXCLUDED.final_score,
			intent = EXCLUDED.intent,
			reasoning = EXCLUDED.reasoning,
			scored_at = EXCLUDED.scored_at`

	for _, rec := range records {
		_, err := tx.Exec(ctx, query,
			rec.LeadID, rec.OfferID, rec.RoleScore, rec.IndustryScore, rec.CompletenessScore,
			rec.RuleScore, rec.AIScore, rec.FinalScore, rec.Intent, rec.Reasoning, rec.ScoredAt,
		)
		if err != nil {
			return fmt.Errorf("upsert score for lead %s: %w", rec.LeadID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit score upsert: %w", err)
	}

	return nil
}

// ListResults returns persisted results joined with their leads, highest
// final score first.
func (r *Repo) ListResults(ctx context.Context) ([]Result, error) {
	query := `
		SELECT
			s.lead_id, l.name, l.role, l.company, l.industry, l.location,
			s.role_score, s.industry_score, s.completeness_score,
			s.rule_score, s.ai_score, s.final_score, s.intent, s.reasoning, s.scored_at
		FROM lead_scores s
		JOIN leads l ON l.id = s.lead_id
		ORDER BY s.final_score DESC, l.created_at ASC, l.id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list score results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var res Result
		if err := rows.Scan(
			&res.LeadID, &res.Name, &res.Role, &res.Company, &res.Industry, &res.Location,
			&res.RoleScore, &res.IndustryScore, &res.CompletenessScore,
			&res.RuleScore, &res.AIScore, &res.FinalScore, &res.Intent, &res.Reasoning, &res.ScoredAt,
		); err != nil {
			return nil, fmt.Errorf("scan score result: %w", err)
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
