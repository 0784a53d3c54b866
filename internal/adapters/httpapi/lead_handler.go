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

type LeadHandler struct {
	leads      input.LeadUseCase
	translator output.T
}

func NewLeadHandler(leads input.LeadUseCase, translator output.T) *LeadHandler {
	return &LeadHandler{leads: leads, translator: translator}
}

type leadResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Program   string    `json:"program,omitempty"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toLeadResponse(l entities.Lead) leadResponse {
	return leadResponse{
		ID:        l.ID,
		Name:      l.Name,
		Email:     l.Email,
		Phone:     l.Phone,
		Program:   l.Program,
		Source:    l.Source,
		Status:    l.Status,
		Notes:     l.Notes,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// Capture handles POST /leads, the trial-class form on the public site.
func (h *LeadHandler) Capture(c *gin.Context) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Program string `json:"program"`
		Source  string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	lead := &entities.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Program: req.Program,
		Source:  req.Source,
	}
	if err := h.leads.CaptureLead(c.Request.Context(), lead); err != nil {
		if isValidationErr(err) {
			badRequest(c, err)
			return
		}
		log.Printf("capture lead: %v", err)
		internalError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"lead": toLeadResponse(*lead),
		"message": h.translator.T(localeFromRequest(c), "lead.received",
			map[string]any{"Name": lead.Name}),
	})
}

// Get handles GET /leads/:id.
func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.leads.GetLead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("get lead %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toLeadResponse(*lead))
}

// List handles GET /leads. ?status= filters by pipeline stage.
func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.leads.ListLeads(c.Request.Context(), c.Query("status"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			badRequest(c, err)
			return
		}
		log.Printf("list leads: %v", err)
		internalError(c)
		return
	}

	out := make([]leadResponse, 0, len(leads))
	for _, l := range leads {
		out = append(out, toLeadResponse(l))
	}
	c.JSON(http.StatusOK, gin.H{"leads": out, "count": len(out)})
}

// UpdateStatus handles PATCH /leads/:id/status.
func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	lead, err := h.leads.UpdateLeadStatus(c.Request.Context(), c.Param("id"), req.Status, req.Notes)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			badRequest(c, err)
			return
		}
		if errors.Is(err, domain.ErrLeadNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("update lead %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, toLeadResponse(*lead))
}

// Delete handles DELETE /leads/:id.
func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.leads.DeleteLead(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			notFound(c, err)
			return
		}
		log.Printf("delete lead %s: %v", c.Param("id"), err)
		internalError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
