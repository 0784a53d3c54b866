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
)

type EventHandler struct {
	events input.EventUseCase
}

func NewEventHandler(events input.EventUseCase) *EventHandler {
	return &EventHandler{events: events}
}

type eventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	UnitID      string    `json:"unit_id"`
	Active      *bool     `json:"active"`
}

type eventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Location    string    `json:"location"`
	UnitID      string    `json:"unit_id,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toEventResponse(e entities.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Date:        e.Date,
		Location:    e.Location,
		UnitID:      e.UnitID,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

// Create handles POST /events.
func (h *EventHandler) Create(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	event := &entities.Event{
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		UnitID:      req.UnitID,
	}
	if err := h.events.CreateEvent(c.Request.Context(), event); err != nil {
		if isValidationErr(err) {
			badRequest(c, err)
			return
		}
		log.Printf("create event: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, toEventResponse(*event))
}

// Get handles GET /events/:id.
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("get event %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// List handles GET /events. ?active=true filters out deactivated events.
func (h *EventHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	events, err := h.events.ListEvents(c.Request.Context(), activeOnly)
	if err != nil {
		log.Printf("list events: %v", err)
		internalError(c)
		return
	}

	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{"events": out, "count": len(out)})
}

// Update handles PUT /events/:id. Omitted active keeps the current value.
func (h *EventHandler) Update(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	current, err := h.events.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("get event %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}

	event := &entities.Event{
		ID:          current.ID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		UnitID:      req.UnitID,
		Active:      current.Active,
	}
	if req.Active != nil {
		event.Active = *req.Active
	}
	if err := h.events.UpdateEvent(c.Request.Context(), event); err != nil {
		if isValidationErr(err) {
			badRequest(c, err)
			return
		}
		if errors.Is(err, domain.ErrEventNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("update event %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(*event))
}

// Delete handles DELETE /events/:id. Check-ins go with the event.
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.events.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("delete event %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
