package leadRepo

import (
	"context"

	"oficio/models"
)

// LeadRepository defines data access for submitted service requests.
type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	GetByID(ctx context.Context, id string) (*models.Lead, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
