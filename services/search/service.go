package search

import (
	"context"
	"math"
	"sort"
	"strings"

	catalogRepo "oficio/database/repository/catalog"
	professionalRepo "oficio/database/repository/professional"
	"oficio/models"

	"go.uber.org/zap"
)

const lexicalFetchLimit = 20

// SearchService answers free-text marketplace searches.
type SearchService interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

// DefaultSearchService implements SearchService. It runs the semantic pass
// over catalog embeddings and only pays for the lexical backend round when
// the semantic pass comes up short.
type DefaultSearchService struct {
	Catalog       catalogRepo.CatalogRepository
	Professionals professionalRepo.ProfessionalRepository
	Embedder      Embedder
	Cache         EmbeddingCache
	Logger        *zap.Logger
}

// Search embeds the query, scores it against the catalog, optionally gathers
// lexical matches, and ranks the merged list. Collaborator failures degrade
// to empty inputs so the pure ranker never observes a partial failure.
func (s *DefaultSearchService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []models.SearchResult{}, nil
	}

	semantic := s.semanticMatches(ctx, trimmed)

	// Cost short-circuit: with enough qualifying semantic hits, skip the
	// lexical backend calls entirely.
	var lexical []models.LexicalMatch
	if countQualifying(semantic, DefaultSimilarityFloor) < minSemanticResults {
		lexical = s.lexicalMatches(ctx, trimmed)
	}

	return RankResults(trimmed, semantic, lexical, DefaultSimilarityFloor), nil
}

// semanticMatches embeds the query and scores it against every embedded
// catalog service, highest similarity first.
func (s *DefaultSearchService) semanticMatches(ctx context.Context, query string) []models.SemanticMatch {
	vec, ok := s.Cache.Get(ctx, query)
	if !ok {
		fresh, err := s.Embedder.EmbedQuery(ctx, query)
		if err != nil {
			s.Logger.Warn("Search: query embedding failed, skipping semantic pass",
				zap.String("query", query), zap.Error(err))
			return nil
		}
		vec = fresh
		if err := s.Cache.Set(ctx, query, vec); err != nil {
			s.Logger.Warn("Search: failed to cache query embedding", zap.Error(err))
		}
	}

	services, err := s.Catalog.AllEmbedded(ctx)
	if err != nil {
		s.Logger.Warn("Search: embedded catalog fetch failed, skipping semantic pass", zap.Error(err))
		return nil
	}

	matches := make([]models.SemanticMatch, 0, len(services))
	for _, svc := range services {
		sim := cosineSimilarity(vec, svc.Embedding)
		matches = append(matches, models.SemanticMatch{
			ServiceID:   svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			MinPrice:    svc.MinPrice,
			Similarity:  sim,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	return matches
}

// lexicalMatches runs the substring fallback over the catalog and the
// professional directory. Services are inserted before professionals so the
// ranker's stable ordering keeps catalog rows ahead on ties.
func (s *DefaultSearchService) lexicalMatches(ctx context.Context, query string) []models.LexicalMatch {
	var matches []models.LexicalMatch

	services, err := s.Catalog.LexicalSearch(ctx, query, lexicalFetchLimit)
	if err != nil {
		s.Logger.Warn("Search: catalog lexical search failed", zap.Error(err))
	}
	for _, svc := range services {
		price := svc.MinPrice
		matches = append(matches, models.LexicalMatch{
			ID:          svc.ID,
			Type:        models.ResultService,
			Title:       svc.Name,
			Description: svc.Description,
			Price:       &price,
		})
	}

	pros, err := s.Professionals.LexicalSearch(ctx, query, lexicalFetchLimit)
	if err != nil {
		s.Logger.Warn("Search: professional lexical search failed", zap.Error(err))
	}
	for _, pro := range pros {
		rating := pro.Rating
		matches = append(matches, models.LexicalMatch{
			ID:          pro.ID,
			Type:        models.ResultProfessional,
			Title:       pro.Name,
			Description: pro.Discipline,
			Rating:      &rating,
		})
	}
	return matches
}

func countQualifying(matches []models.SemanticMatch, floor float64) int {
	n := 0
	for _, m := range matches {
		if m.Similarity >= floor {
			n++
		}
	}
	return n
}

// cosineSimilarity returns the cosine of the angle between a and b, or 0 when
// either vector is empty, mismatched, or zero-length.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
