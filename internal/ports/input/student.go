package input

import (
	"context"

	"dojocrm/internal/domain/entities"
)

type StudentUseCase interface {
	CreateStudent(ctx context.Context, student *entities.Student) error
	GetStudent(ctx context.Context, id string) (*entities.Student, error)
	ListStudents(ctx context.Context) ([]entities.Student, error)
	UpdateStudent(ctx context.Context, student *entities.Student) error
	DeleteStudent(ctx context.Context, id string) error
}
