package entities

import "time"

// Event is a scheduled academy event (seminar, grading, open mat, tournament).
type Event struct {
	ID          string
	Name        string
	Description string
	Date        time.Time
	Location    string
	UnitID      string // owning academy unit (branch)
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
