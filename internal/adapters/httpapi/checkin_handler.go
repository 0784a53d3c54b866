package httpapi

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/input"
	"dojocrm/internal/ports/output"
)

type CheckinHandler struct {
	checkins   input.CheckinUseCase
	translator output.T
}

func NewCheckinHandler(checkins input.CheckinUseCase, translator output.T) *CheckinHandler {
	return &CheckinHandler{checkins: checkins, translator: translator}
}

type checkinResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	StudentID   string    `json:"student_id"`
	CheckedInAt time.Time `json:"checked_in_at"`
	StudentName string    `json:"student_name,omitempty"`
}

func toCheckinResponse(c entities.Checkin) checkinResponse {
	return checkinResponse{
		ID:          c.ID,
		EventID:     c.EventID,
		StudentID:   c.StudentID,
		CheckedInAt: c.CheckedInAt,
	}
}

// CheckIn handles POST /checkins.
func (h *CheckinHandler) CheckIn(c *gin.Context) {
	var req struct {
		EventID   string `json:"event_id" binding:"required"`
		StudentID string `json:"student_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	checkin, err := h.checkins.CheckIn(c.Request.Context(), req.EventID, req.StudentID)
	if err != nil {
		if domain.IsCheckinDenial(err) {
			status, reason, messageKey := denialFor(err)
			c.JSON(status, gin.H{
				"reason":  reason,
				"message": h.translator.T(localeFromRequest(c), messageKey, nil),
			})
			return
		}
		log.Printf("check-in event=%s student=%s: %v", req.EventID, req.StudentID, err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"checkin": toCheckinResponse(*checkin),
		"message": h.translator.T(localeFromRequest(c), "checkin.recorded", nil),
	})
}

// ListByEvent handles GET /events/:id/checkins.
func (h *CheckinHandler) ListByEvent(c *gin.Context) {
	list, err := h.checkins.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("list check-ins event=%s: %v", c.Param("id"), err)
		internalError(c)
		return
	}

	out := make([]checkinResponse, 0, len(list))
	for _, ec := range list {
		resp := toCheckinResponse(ec.Checkin)
		resp.StudentName = ec.StudentName
		out = append(out, resp)
	}
	c.JSON(http.StatusOK, gin.H{"checkins": out, "count": len(out)})
}

// ListByStudent handles GET /students/:id/checkins.
func (h *CheckinHandler) ListByStudent(c *gin.Context) {
	list, err := h.checkins.ListByStudent(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("list check-ins student=%s: %v", c.Param("id"), err)
		internalError(c)
		return
	}

	out := make([]checkinResponse, 0, len(list))
	for _, ci := range list {
		out = append(out, toCheckinResponse(ci))
	}
	c.JSON(http.StatusOK, gin.H{"checkins": out, "count": len(out)})
}

// Delete handles DELETE /checkins/:id.
func (h *CheckinHandler) Delete(c *gin.Context) {
	if err := h.checkins.Remove(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrCheckinNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("delete check-in %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
