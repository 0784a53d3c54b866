package input

import (
	"context"

	"dojocrm/internal/domain/entities"
)

type EventUseCase interface {
	CreateEvent(ctx context.Context, event *entities.Event) error
	GetEvent(ctx context.Context, id string) (*entities.Event, error)
	ListEvents(ctx context.Context, activeOnly bool) ([]entities.Event, error)
	UpdateEvent(ctx context.Context, event *entities.Event) error
	DeleteEvent(ctx context.Context, id string) error
}
