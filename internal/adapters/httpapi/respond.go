package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dojocrm/internal/domain"
)

// Stable reason codes for check-in denials; the localized message may vary,
// these never do.
const (
	reasonEventNotFound    = "EVENT_NOT_FOUND"
	reasonAlreadyCheckedIn = "ALREADY_CHECKED_IN"
	reasonOutsideWindow    = "OUTSIDE_WINDOW"
)

// localeFromRequest extracts the preferred language from Accept-Language.
// Quality values are ignored; the first listed language wins and go-i18n
// does the actual tag matching/fallback.
func localeFromRequest(c *gin.Context) string {
	header := c.GetHeader("Accept-Language")
	if header == "" {
		return ""
	}
	first := strings.SplitN(header, ",", 2)[0]
	first = strings.SplitN(first, ";", 2)[0]
	return strings.TrimSpace(first)
}

// denialFor maps a check-in denial error to HTTP status, reason code and
// message catalog key. Callers must only pass errors for which
// domain.IsCheckinDenial holds.
func denialFor(err error) (status int, reason, messageKey string) {
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, reasonEventNotFound, "checkin.denied.event_not_found"
	case errors.Is(err, domain.ErrAlreadyCheckedIn):
		return http.StatusConflict, reasonAlreadyCheckedIn, "checkin.denied.already_checked_in"
	default:
		return http.StatusConflict, reasonOutsideWindow, "checkin.denied.outside_window"
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func notFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// isValidationErr reports whether err is one of the domain's input
// validation failures, which map to 400 rather than 500.
func isValidationErr(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrLocationRequired) ||
		errors.Is(err, domain.ErrDateRequired) ||
		errors.Is(err, domain.ErrContactRequired) ||
		errors.Is(err, domain.ErrInvalidStatus)
}
