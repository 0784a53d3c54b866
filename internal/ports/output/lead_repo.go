package output

import (
	"context"

	"dojocrm/internal/domain/entities"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *entities.Lead) error
	FindByID(ctx context.Context, id string) (*entities.Lead, error)
	// FindAll returns leads newest first; status filters when non-empty.
	FindAll(ctx context.Context, status string) ([]entities.Lead, error)
	Update(ctx context.Context, lead *entities.Lead) error
	Delete(ctx context.Context, id string) error
}
