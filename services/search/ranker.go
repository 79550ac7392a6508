package search

import (
	"sort"
	"strings"

	"oficio/models"
)

// Ranking constants.
const (
	// DefaultSimilarityFloor filters embedding noise without starving sparse
	// catalogs of results.
	DefaultSimilarityFloor = 0.3
	// minSemanticResults is the short-circuit threshold: the lexical pass only
	// merges when the semantic pass produced strictly fewer results than this.
	minSemanticResults = 5
	// maxResults caps the final ranked list.
	maxResults = 20
)

// RankResults merges semantic and lexical search hits into one de-duplicated,
// ordered list.
//
// The semantic pass keeps matches at or above similarityFloor. The lexical
// pass merges only when the semantic pass produced fewer than five results;
// with five or more semantic hits the lexical input is ignored outright.
// Duplicate ids resolve first-seen-wins, so a semantic hit always beats its
// lexical twin. Scored results sort before unscored ones, by similarity
// descending; unscored results keep their source order. The list is truncated
// to twenty entries.
//
// Pure and deterministic: same inputs, same output ordering, no I/O.
func RankResults(query string, semantic []models.SemanticMatch, lexical []models.LexicalMatch, similarityFloor float64) []models.SearchResult {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}
	}

	results := make([]models.SearchResult, 0, len(semantic)+len(lexical))
	seen := make(map[string]bool, len(semantic)+len(lexical))

	for _, m := range semantic {
		if m.Similarity < similarityFloor || seen[m.ServiceID] {
			continue
		}
		seen[m.ServiceID] = true
		sim := m.Similarity
		price := m.MinPrice
		results = append(results, models.SearchResult{
			ID:          m.ServiceID,
			Type:        models.ResultService,
			Title:       m.Name,
			Description: m.Description,
			Price:       &price,
			Similarity:  &sim,
		})
	}

	if len(results) < minSemanticResults {
		for _, m := range lexical {
			if seen[m.ID] {
				continue
			}
			seen[m.ID] = true
			results = append(results, models.SearchResult{
				ID:          m.ID,
				Type:        m.Type,
				Title:       m.Title,
				Description: m.Description,
				Price:       m.Price,
				Rating:      m.Rating,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Similarity, results[j].Similarity
		switch {
		case a != nil && b != nil:
			return *a > *b
		case a != nil:
			return true
		default:
			return false
		}
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}
