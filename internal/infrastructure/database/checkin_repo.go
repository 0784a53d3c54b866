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

var _ output.CheckinRepository = (*CheckinRepository)(nil)

// CheckinRepository persists check-ins in PostgreSQL. The composite unique
// index on (event_id, student_id) is the authoritative duplicate guard;
// inserts that hit it come back as domain.ErrAlreadyCheckedIn.
type CheckinRepository struct {
	pool *pgxpool.Pool
}

func NewCheckinRepository(pool *pgxpool.Pool) *CheckinRepository {
	return &CheckinRepository{pool: pool}
}

func (r *CheckinRepository) Create(ctx context.Context, checkin *entities.Checkin) error {
	const stmt = `
INSERT INTO checkins (id, event_id, student_id, checked_in_at)
VALUES ($1, $2, $3, $4)
RETURNING created_at`

	err := r.pool.QueryRow(ctx, stmt,
		checkin.ID,
		checkin.EventID,
		checkin.StudentID,
		checkin.CheckedInAt,
	).Scan(&checkin.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyCheckedIn
		}
		return fmt.Errorf("create check-in: %w", err)
	}
	return nil
}

func (r *CheckinRepository) FindByID(ctx context.Context, id string) (*entities.Checkin, error) {
	const query = `
SELECT id, event_id, student_id, checked_in_at, created_at
FROM checkins
WHERE id = $1`

	var c entities.Checkin
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.EventID, &c.StudentID, &c.CheckedInAt, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCheckinNotFound
		}
		return nil, fmt.Errorf("get check-in by id: %w", err)
	}
	return &c, nil
}

func (r *CheckinRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.Checkin, error) {
	const query = `
SELECT id, event_id, student_id, checked_in_at, created_at
FROM checkins
WHERE event_id = $1
ORDER BY checked_in_at`

	return r.list(ctx, query, eventID)
}

func (r *CheckinRepository) FindByStudentID(ctx context.Context, studentID string) ([]entities.Checkin, error) {
	const query = `
SELECT id, event_id, student_id, checked_in_at, created_at
FROM checkins
WHERE student_id = $1
ORDER BY checked_in_at`

	return r.list(ctx, query, studentID)
}

func (r *CheckinRepository) list(ctx context.Context, query string, arg any) ([]entities.Checkin, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	var out []entities.Checkin
	for rows.Next() {
		var c entities.Checkin
		if err := rows.Scan(&c.ID, &c.EventID, &c.StudentID, &c.CheckedInAt, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CheckinRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM checkins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete check-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCheckinNotFound
	}
	return nil
}
