package input

import (
	"context"

	"dojocrm/internal/domain/entities"
)

type CheckinUseCase interface {
	// CheckIn attempts to record attendance for studentID at eventID.
	// Denials come back as the domain's sentinel errors.
	CheckIn(ctx context.Context, eventID, studentID string) (*entities.Checkin, error)
	ListByEvent(ctx context.Context, eventID string) ([]entities.EventCheckin, error)
	ListByStudent(ctx context.Context, studentID string) ([]entities.Checkin, error)
	Remove(ctx context.Context, checkinID string) error
}
