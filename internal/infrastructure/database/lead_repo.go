package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
)

var _ output.LeadRepository = (*LeadRepository)(nil)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entities.Lead) error {
	const stmt = `
INSERT INTO leads (id, name, email, phone, program, source, status, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, stmt,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Program,
		lead.Source,
		lead.Status,
		lead.Notes,
	).Scan(&lead.CreatedAt, &lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entities.Lead, error) {
	const query = `
SELECT id, name, email, phone, program, source, status, notes, created_at, updated_at
FROM leads
WHERE id = $1`

	var l entities.Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Program, &l.Source, &l.Status, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("get lead by id: %w", err)
	}
	return &l, nil
}

func (r *LeadRepository) FindAll(ctx context.Context, status string) ([]entities.Lead, error) {
	query := `
SELECT id, name, email, phone, program, source, status, notes, created_at, updated_at
FROM leads`
	args := []any{}
	if status != "" {
		query += `
WHERE status = $1`
		args = append(args, status)
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var out []entities.Lead
	for rows.Next() {
		var l entities.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Email, &l.Phone, &l.Program, &l.Source, &l.Status, &l.Notes, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entities.Lead) error {
	const stmt = `
UPDATE leads
SET name = $2, email = $3, phone = $4, program = $5, source = $6, status = $7, notes = $8, updated_at = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Program,
		lead.Source,
		lead.Status,
		lead.Notes,
	)
	if err != nil {
		return fmt.Errorf("update lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLeadNotFound
	}
	return nil
}
