package entities

import "time"

// Lead is a prospect captured from the marketing site's trial-class form.
type Lead struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Program   string // program of interest
	Source    string // e.g. "landing-page", "referral", "walk-in"
	Status    string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
