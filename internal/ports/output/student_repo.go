package output

import (
	"context"

	"dojocrm/internal/domain/entities"
)

type StudentRepository interface {
	Create(ctx context.Context, student *entities.Student) error
	FindByID(ctx context.Context, id string) (*entities.Student, error)
	FindAll(ctx context.Context) ([]entities.Student, error)
	Update(ctx context.Context, student *entities.Student) error
	Delete(ctx context.Context, id string) error
}
