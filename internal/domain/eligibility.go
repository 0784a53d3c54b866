package domain

import (
	"time"

	"dojocrm/internal/domain/entities"
)

// CheckinWindow is the tolerance around an event's scheduled time during
// which check-in is permitted. The window is symmetric: a student may check
// in up to two hours before or after the event's stated time, and the two
// directions share one denial outcome.
const CheckinWindow = 2 * time.Hour

// CheckinDecision is the outcome of an eligibility evaluation.
type CheckinDecision string

const (
	CheckinAllowed          CheckinDecision = "allowed"
	CheckinEventNotFound    CheckinDecision = "event_not_found"
	CheckinAlreadyCheckedIn CheckinDecision = "already_checked_in"
	CheckinOutsideWindow    CheckinDecision = "outside_window"
)

// Err maps a decision to its domain error. CheckinAllowed maps to nil.
func (d CheckinDecision) Err() error {
	switch d {
	case CheckinEventNotFound:
		return ErrEventNotFound
	case CheckinAlreadyCheckedIn:
		return ErrAlreadyCheckedIn
	case CheckinOutsideWindow:
		return ErrOutsideWindow
	}
	return nil
}

// EvaluateCheckin decides whether studentID may check in to event at now.
// It has no side effects: the same inputs always produce the same decision.
//
// The existing slice must hold the event's current check-ins; the duplicate
// check here is a fast path only, the storage layer's uniqueness constraint
// is the authoritative guard under concurrency.
func EvaluateCheckin(event *entities.Event, existing []entities.Checkin, studentID string, now time.Time) CheckinDecision {
	if event == nil || !event.Active {
		return CheckinEventNotFound
	}
	for _, c := range existing {
		if c.EventID == event.ID && c.StudentID == studentID {
			return CheckinAlreadyCheckedIn
		}
	}
	diff := event.Date.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	if diff > CheckinWindow {
		return CheckinOutsideWindow
	}
	return CheckinAllowed
}
