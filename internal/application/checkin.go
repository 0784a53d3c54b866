package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dojocrm/internal/clock"
	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
)

type CheckinService struct {
	checkinRepo output.CheckinRepository
	eventRepo   output.EventRepository
	studentRepo output.StudentRepository
	clock       clock.Clock
}

func NewCheckinService(
	checkinRepo output.CheckinRepository,
	eventRepo output.EventRepository,
	studentRepo output.StudentRepository,
	clk clock.Clock,
) *CheckinService {
	return &CheckinService{
		checkinRepo: checkinRepo,
		eventRepo:   eventRepo,
		studentRepo: studentRepo,
		clock:       clk,
	}
}

// CheckIn records attendance for studentID at eventID. The eligibility
// evaluation and the insert are two separate steps; when a concurrent call
// wins the insert race, the storage layer's duplicate rejection is surfaced
// as domain.ErrAlreadyCheckedIn so callers see one denial vocabulary
// regardless of which layer caught it.
func (s *CheckinService) CheckIn(ctx context.Context, eventID, studentID string) (*entities.Checkin, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if !errors.Is(err, domain.ErrEventNotFound) {
			return nil, fmt.Errorf("load event: %w", err)
		}
		event = nil
	}

	var existing []entities.Checkin
	if event != nil {
		existing, err = s.checkinRepo.FindByEventID(ctx, event.ID)
		if err != nil {
			return nil, fmt.Errorf("load check-ins: %w", err)
		}
	}

	now := s.clock.Now()
	if decision := domain.EvaluateCheckin(event, existing, studentID, now); decision != domain.CheckinAllowed {
		return nil, decision.Err()
	}

	checkin := &entities.Checkin{
		ID:          uuid.NewString(),
		EventID:     eventID,
		StudentID:   studentID,
		CheckedInAt: now,
	}
	if err := s.checkinRepo.Create(ctx, checkin); err != nil {
		if errors.Is(err, domain.ErrAlreadyCheckedIn) {
			return nil, domain.ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("create check-in: %w", err)
	}
	return checkin, nil
}

// ListByEvent returns an event's check-ins ordered by check-in time with
// student display names resolved from the roster. Students missing from the
// roster keep their raw id as the display name.
func (s *CheckinService) ListByEvent(ctx context.Context, eventID string) ([]entities.EventCheckin, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("load event: %w", err)
	}

	checkins, err := s.checkinRepo.FindByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}

	names := make(map[string]string, len(checkins))
	out := make([]entities.EventCheckin, 0, len(checkins))
	for _, c := range checkins {
		name, ok := names[c.StudentID]
		if !ok {
			name = c.StudentID
			if student, err := s.studentRepo.FindByID(ctx, c.StudentID); err == nil {
				name = student.Name
			} else if !errors.Is(err, domain.ErrStudentNotFound) {
				return nil, fmt.Errorf("resolve student %s: %w", c.StudentID, err)
			}
			names[c.StudentID] = name
		}
		out = append(out, entities.EventCheckin{Checkin: c, StudentName: name})
	}
	return out, nil
}

func (s *CheckinService) ListByStudent(ctx context.Context, studentID string) ([]entities.Checkin, error) {
	checkins, err := s.checkinRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load check-ins: %w", err)
	}
	return checkins, nil
}

// Remove deletes a check-in unconditionally. A removed pair may check in
// again afterwards; no residual uniqueness block remains.
func (s *CheckinService) Remove(ctx context.Context, checkinID string) error {
	if err := s.checkinRepo.Delete(ctx, checkinID); err != nil {
		if errors.Is(err, domain.ErrCheckinNotFound) {
			return domain.ErrCheckinNotFound
		}
		return fmt.Errorf("delete check-in: %w", err)
	}
	return nil
}
