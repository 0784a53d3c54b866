package entities

import "time"

// Checkin records one student's attendance at one event.
// At most one Checkin exists per (EventID, StudentID) pair; the storage
// layer enforces this, not the application.
type Checkin struct {
	ID          string
	EventID     string
	StudentID   string
	CheckedInAt time.Time
	CreatedAt   time.Time
}

// EventCheckin is a Checkin with the student's display name resolved from
// the roster, for attendance listings.
type EventCheckin struct {
	Checkin
	StudentName string
}
