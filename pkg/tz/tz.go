package tz

import (
	"log"
	"time"
)

// Load returns the named location, falling back to UTC when the name is
// empty or unknown. Announcements format event times in the academy's
// local timezone, not the server's.
func Load(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("tz: load %s: %v (falling back to UTC)", name, err)
		return time.UTC
	}
	return loc
}
