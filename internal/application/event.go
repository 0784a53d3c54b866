package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
)

type EventService struct {
	eventRepo output.EventRepository
	announcer output.Announcer
}

func NewEventService(eventRepo output.EventRepository, announcer output.Announcer) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		announcer: announcer,
	}
}

func validateEvent(event *entities.Event) error {
	if strings.TrimSpace(event.Name) == "" {
		return domain.ErrNameRequired
	}
	if strings.TrimSpace(event.Location) == "" {
		return domain.ErrLocationRequired
	}
	if event.Date.IsZero() {
		return domain.ErrDateRequired
	}
	return nil
}

func (s *EventService) CreateEvent(ctx context.Context, event *entities.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	event.Active = true
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	if err := s.announcer.EventCreated(ctx, event); err != nil {
		// Announcements are best effort; the event is already persisted.
		log.Printf("announce event %s: %v", event.ID, err)
	}
	return nil
}

func (s *EventService) GetEvent(ctx context.Context, id string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, id)
}

func (s *EventService) ListEvents(ctx context.Context, activeOnly bool) ([]entities.Event, error) {
	return s.eventRepo.FindAll(ctx, activeOnly)
}

// UpdateEvent replaces an event's mutable fields. Deactivation is a normal
// update with Active=false; deactivated events stay listed for history but
// are denied for check-in.
func (s *EventService) UpdateEvent(ctx context.Context, event *entities.Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	existing, err := s.eventRepo.FindByID(ctx, event.ID)
	if err != nil {
		return err
	}
	event.CreatedAt = existing.CreatedAt
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

// DeleteEvent hard-deletes an event; its check-ins go with it.
func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
