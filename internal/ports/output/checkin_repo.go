package output

import (
	"context"

	"dojocrm/internal/domain/entities"
)

// CheckinRepository stores check-in records. Create must reject a second
// record for the same (event, student) pair with domain.ErrAlreadyCheckedIn,
// backed by a uniqueness constraint in the storage engine itself so that
// concurrent inserts across processes cannot both succeed.
type CheckinRepository interface {
	Create(ctx context.Context, checkin *entities.Checkin) error
	FindByID(ctx context.Context, id string) (*entities.Checkin, error)
	// FindByEventID returns the event's check-ins ordered by check-in time ascending.
	FindByEventID(ctx context.Context, eventID string) ([]entities.Checkin, error)
	FindByStudentID(ctx context.Context, studentID string) ([]entities.Checkin, error)
	Delete(ctx context.Context, id string) error
}
