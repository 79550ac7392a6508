package professionalRepo

import (
	"context"

	"oficio/models"
)

// ProfessionalRepository defines data access for the professional directory.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, id string) (*models.Professional, error)
	// LexicalSearch returns active professionals whose name or discipline
	// contains the query, case-insensitively.
	LexicalSearch(ctx context.Context, query string, limit int) ([]models.Professional, error)
	Upsert(ctx context.Context, pro *models.Professional) error
}
