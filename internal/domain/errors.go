package domain

import "errors"

// Domain errors. The three check-in denials are expected business outcomes
// and must stay distinguishable from infrastructure failures at the edges.
var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAlreadyCheckedIn = errors.New("already checked in")
	ErrOutsideWindow    = errors.New("outside check-in window")

	ErrCheckinNotFound = errors.New("check-in not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrLeadNotFound    = errors.New("lead not found")

	ErrNameRequired     = errors.New("name is required")
	ErrLocationRequired = errors.New("location is required")
	ErrDateRequired     = errors.New("date is required")
	ErrContactRequired  = errors.New("email or phone is required")
	ErrInvalidStatus    = errors.New("invalid lead status")
)

// IsCheckinDenial reports whether err is one of the three check-in denial
// outcomes, as opposed to an infrastructure failure.
func IsCheckinDenial(err error) bool {
	return errors.Is(err, ErrEventNotFound) ||
		errors.Is(err, ErrAlreadyCheckedIn) ||
		errors.Is(err, ErrOutsideWindow)
}
