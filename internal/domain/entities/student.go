package entities

import "time"

// Student is an enrolled member of the academy roster.
type Student struct {
	ID        string
	Name      string
	Email     string
	Program   string // e.g. "bjj-adults", "muay-thai-kids"
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
