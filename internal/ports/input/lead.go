package input

import (
	"context"

	"dojocrm/internal/domain/entities"
)

type LeadUseCase interface {
	CaptureLead(ctx context.Context, lead *entities.Lead) error
	GetLead(ctx context.Context, id string) (*entities.Lead, error)
	ListLeads(ctx context.Context, status string) ([]entities.Lead, error)
	UpdateLeadStatus(ctx context.Context, id, status, notes string) (*entities.Lead, error)
	DeleteLead(ctx context.Context, id string) error
}
