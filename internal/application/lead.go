package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
)

type LeadService struct {
	leadRepo output.LeadRepository
}

func NewLeadService(leadRepo output.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// CaptureLead stores a prospect submitted from the marketing site. New leads
// always enter with status "new"; triage happens in the back office.
func (s *LeadService) CaptureLead(ctx context.Context, lead *entities.Lead) error {
	if strings.TrimSpace(lead.Name) == "" {
		return domain.ErrNameRequired
	}
	if strings.TrimSpace(lead.Email) == "" && strings.TrimSpace(lead.Phone) == "" {
		return domain.ErrContactRequired
	}
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	if lead.Source == "" {
		lead.Source = "website"
	}
	lead.Status = domain.LeadStatusNew
	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

func (s *LeadService) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	return s.leadRepo.FindByID(ctx, id)
}

func (s *LeadService) ListLeads(ctx context.Context, status string) ([]entities.Lead, error) {
	if status != "" && !domain.ValidLeadStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	return s.leadRepo.FindAll(ctx, status)
}

func (s *LeadService) UpdateLeadStatus(ctx context.Context, id, status, notes string) (*entities.Lead, error) {
	if !domain.ValidLeadStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	lead, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lead.Status = status
	if notes != "" {
		lead.Notes = notes
	}
	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, id string) error {
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrLeadNotFound) {
			return domain.ErrLeadNotFound
		}
		return fmt.Errorf("delete lead: %w", err)
	}
	return nil
}
