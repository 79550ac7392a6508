package catalogRepo

import (
	"context"

	"oficio/models"
)

// CatalogRepository defines the data access contract for the service catalog.
type CatalogRepository interface {
	GetByID(ctx context.Context, id string) (*models.Service, error)
	ListByDiscipline(ctx context.Context, discipline string) ([]models.Service, error)
	// LexicalSearch returns active services whose name or description contains
	// the query, case-insensitively.
	LexicalSearch(ctx context.Context, query string, limit int) ([]models.Service, error)
	// AllEmbedded returns every active service that has an embedding, for
	// in-process similarity scoring.
	AllEmbedded(ctx context.Context) ([]models.Service, error)
	Upsert(ctx context.Context, svc *models.Service) error
}
