package pricing

import (
	"context"
	"fmt"

	catalogRepo "oficio/database/repository/catalog"
	"oficio/models"
)

// QuoteService exposes catalog-backed quote previews to the API layer.
type QuoteService interface {
	PreviewQuote(ctx context.Context, serviceID string, formAnswers map[string]any, immediate bool) (*models.Quote, *models.Service, error)
}

// DefaultQuoteService implements QuoteService.
type DefaultQuoteService struct {
	Catalog catalogRepo.CatalogRepository
}

// PreviewQuote resolves the catalog base price for the service and runs the
// pure pricing engine over it. The catalog lookup is the only fallible step;
// the engine itself never errors.
func (s *DefaultQuoteService) PreviewQuote(ctx context.Context, serviceID string, formAnswers map[string]any, immediate bool) (*models.Quote, *models.Service, error) {
	svc, err := s.Catalog.GetByID(ctx, serviceID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve service for quote: %w", err)
	}
	quote := ComputeQuote(svc.MinPrice, formAnswers, immediate)
	return &quote, svc, nil
}
