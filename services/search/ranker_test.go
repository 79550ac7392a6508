package search

import (
	"fmt"
	"testing"

	"oficio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func semMatch(id string, sim float64) models.SemanticMatch {
	return models.SemanticMatch{ServiceID: id, Name: "servicio " + id, MinPrice: 100, Similarity: sim}
}

func lexMatch(id string) models.LexicalMatch {
	return models.LexicalMatch{ID: id, Type: models.ResultService, Title: "servicio " + id}
}

func resultIDs(results []models.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
	}
	return ids
}

func TestRank_EmptyQueryFastPath(t *testing.T) {
	semantic := []models.SemanticMatch{semMatch("a", 0.9)}
	lexical := []models.LexicalMatch{lexMatch("b")}

	for _, query := range []string{"", "   ", "\t\n"} {
		results := RankResults(query, semantic, lexical, DefaultSimilarityFloor)
		assert.Empty(t, results)
		assert.NotNil(t, results)
	}
}

func TestRank_SemanticWinsDedup(t *testing.T) {
	// "a" appears in both passes: the semantic entry wins the collision and
	// sorts first because it carries a score.
	semantic := []models.SemanticMatch{semMatch("a", 0.9)}
	lexical := []models.LexicalMatch{lexMatch("b"), lexMatch("a")}

	results := RankResults("plomero", semantic, lexical, DefaultSimilarityFloor)

	require.Equal(t, []string{"a", "b"}, resultIDs(results))
	require.NotNil(t, results[0].Similarity)
	assert.Equal(t, 0.9, *results[0].Similarity)
	assert.Nil(t, results[1].Similarity)
}

func TestRank_SimilarityFloorFiltersSemanticNoise(t *testing.T) {
	semantic := []models.SemanticMatch{
		semMatch("keep-high", 0.8),
		semMatch("keep-floor", 0.3), // floor is inclusive
		semMatch("drop", 0.29),
	}

	results := RankResults("limpieza", semantic, nil, DefaultSimilarityFloor)

	assert.Equal(t, []string{"keep-high", "keep-floor"}, resultIDs(results))
}

func TestRank_SemanticShortCircuitBoundary(t *testing.T) {
	lexical := []models.LexicalMatch{lexMatch("lex-1")}

	t.Run("four semantic hits still merge lexical", func(t *testing.T) {
		semantic := make([]models.SemanticMatch, 0, 4)
		for i := 0; i < 4; i++ {
			semantic = append(semantic, semMatch(fmt.Sprintf("sem-%d", i), 0.9-float64(i)*0.1))
		}

		results := RankResults("electricista", semantic, lexical, DefaultSimilarityFloor)
		assert.Len(t, results, 5)
		assert.Equal(t, "lex-1", results[4].ID)
	})

	t.Run("exactly five semantic hits skip lexical", func(t *testing.T) {
		semantic := make([]models.SemanticMatch, 0, 5)
		for i := 0; i < 5; i++ {
			semantic = append(semantic, semMatch(fmt.Sprintf("sem-%d", i), 0.9-float64(i)*0.1))
		}

		results := RankResults("electricista", semantic, lexical, DefaultSimilarityFloor)
		assert.Len(t, results, 5)
		for _, r := range results {
			assert.NotEqual(t, "lex-1", r.ID)
		}
	})

	t.Run("five semantic hits below floor do not count", func(t *testing.T) {
		semantic := make([]models.SemanticMatch, 0, 5)
		for i := 0; i < 5; i++ {
			semantic = append(semantic, semMatch(fmt.Sprintf("sem-%d", i), 0.1))
		}

		results := RankResults("electricista", semantic, lexical, DefaultSimilarityFloor)
		require.Len(t, results, 1)
		assert.Equal(t, "lex-1", results[0].ID)
	})
}

func TestRank_Ordering(t *testing.T) {
	semantic := []models.SemanticMatch{
		semMatch("mid", 0.5),
		semMatch("high", 0.9),
		semMatch("low", 0.4),
	}
	lexical := []models.LexicalMatch{lexMatch("lex-first"), lexMatch("lex-second")}

	results := RankResults("jardinería", semantic, lexical, DefaultSimilarityFloor)

	// Scored results first, score descending; unscored keep insertion order.
	assert.Equal(t, []string{"high", "mid", "low", "lex-first", "lex-second"}, resultIDs(results))
}

func TestRank_Deterministic(t *testing.T) {
	semantic := []models.SemanticMatch{
		semMatch("a", 0.7),
		semMatch("b", 0.7), // equal scores resolve by insertion order, stably
		semMatch("c", 0.6),
	}
	lexical := []models.LexicalMatch{lexMatch("d"), lexMatch("e")}

	first := RankResults("pintura", semantic, lexical, DefaultSimilarityFloor)
	for i := 0; i < 10; i++ {
		again := RankResults("pintura", semantic, lexical, DefaultSimilarityFloor)
		require.Equal(t, first, again)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, resultIDs(first))
}

func TestRank_TruncatesToTwenty(t *testing.T) {
	var lexical []models.LexicalMatch
	for i := 0; i < 30; i++ {
		lexical = append(lexical, lexMatch(fmt.Sprintf("lex-%02d", i)))
	}

	results := RankResults("carpintero", nil, lexical, DefaultSimilarityFloor)

	require.Len(t, results, maxResults)
	assert.Equal(t, "lex-00", results[0].ID)
	assert.Equal(t, "lex-19", results[len(results)-1].ID)
}

func TestRank_ToleratesEmptyInputs(t *testing.T) {
	results := RankResults("herrería", nil, nil, DefaultSimilarityFloor)
	assert.Empty(t, results)
}
