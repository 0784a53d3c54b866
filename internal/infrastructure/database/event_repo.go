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

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	const stmt = `
INSERT INTO events (id, name, description, event_date, location, unit_id, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, stmt,
		event.ID,
		event.Name,
		event.Description,
		event.Date,
		event.Location,
		event.UnitID,
		event.Active,
	).Scan(&event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	const query = `
SELECT id, name, description, event_date, location, unit_id, active, created_at, updated_at
FROM events
WHERE id = $1`

	var e entities.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.UnitID, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	return &e, nil
}

func (r *EventRepository) FindAll(ctx context.Context, activeOnly bool) ([]entities.Event, error) {
	query := `
SELECT id, name, description, event_date, location, unit_id, active, created_at, updated_at
FROM events`
	if activeOnly {
		query += `
WHERE active`
	}
	query += `
ORDER BY event_date`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var out []entities.Event
	for rows.Next() {
		var e entities.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Location, &e.UnitID, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	const stmt = `
UPDATE events
SET name = $2, description = $3, event_date = $4, location = $5, unit_id = $6, active = $7, updated_at = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		event.ID,
		event.Name,
		event.Description,
		event.Date,
		event.Location,
		event.UnitID,
		event.Active,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
