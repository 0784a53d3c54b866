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

var _ output.StudentRepository = (*StudentRepository)(nil)

type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) Create(ctx context.Context, student *entities.Student) error {
	const stmt = `
INSERT INTO students (id, name, email, program, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, stmt,
		student.ID,
		student.Name,
		student.Email,
		student.Program,
		student.Active,
	).Scan(&student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*entities.Student, error) {
	const query = `
SELECT id, name, email, program, active, created_at, updated_at
FROM students
WHERE id = $1`

	var s entities.Student
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Email, &s.Program, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student by id: %w", err)
	}
	return &s, nil
}

func (r *StudentRepository) FindAll(ctx context.Context) ([]entities.Student, error) {
	const query = `
SELECT id, name, email, program, active, created_at, updated_at
FROM students
ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()

	var out []entities.Student
	for rows.Next() {
		var s entities.Student
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Program, &s.Active, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *StudentRepository) Update(ctx context.Context, student *entities.Student) error {
	const stmt = `
UPDATE students
SET name = $2, email = $3, program = $4, active = $5, updated_at = now()
WHERE id = $1`

	tag, err := r.pool.Exec(ctx, stmt,
		student.ID,
		student.Name,
		student.Email,
		student.Program,
		student.Active,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}
