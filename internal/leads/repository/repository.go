package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repo implements the LeadsRepository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements LeadsRepository.
var _ LeadsRepository = (*Repo)(nil)

// InsertBatch persists leads in one transaction and returns them with IDs.
func (r *Repo) InsertBatch(ctx context.Context, params []CreateParams) ([]Lead, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin lead insert: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO leads (name, role, company, industry, location, bio)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, role, company, industry, location, bio, created_at`

	leads := make([]Lead, 0, len(params))
	for _, p := range params {
		var lead Lead
		err := tx.QueryRow(ctx, query, p.Name, p.Role, p.Company, p.Industry, p.Location, p.Bio).Scan(
			&lead.ID, &lead.Name, &lead.Role, &lead.Company, &lead.Industry, &lead.Location, &lead.Bio, &lead.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert lead: %w", err)
		}
		leads = append(leads, lead)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit lead insert: %w", err)
	}

	return leads, nil
}

// List returns all leads in insertion order.
func (r *Repo) List(ctx context.Context) ([]Lead, error) {
	query := `
		SELECT id, name, role, company, industry, location, bio, created_at
		FROM leads
		ORDER BY created_at ASC, id ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID, &lead.Name, &lead.Role, &lead.Company, &lead.Industry, &lead.Location, &lead.Bio, &lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}
