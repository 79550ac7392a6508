package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"oficio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCatalog struct {
	embedded     []models.Service
	lexical      []models.Service
	lexicalCalls int
}

func (f *fakeCatalog) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) ListByDiscipline(ctx context.Context, discipline string) ([]models.Service, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) LexicalSearch(ctx context.Context, query string, limit int) ([]models.Service, error) {
	f.lexicalCalls++
	return f.lexical, nil
}

func (f *fakeCatalog) AllEmbedded(ctx context.Context) ([]models.Service, error) {
	return f.embedded, nil
}

func (f *fakeCatalog) Upsert(ctx context.Context, svc *models.Service) error {
	return errors.New("not implemented")
}

type fakePros struct {
	lexical      []models.Professional
	lexicalCalls int
}

func (f *fakePros) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return nil, errors.New("not implemented")
}

func (f *fakePros) LexicalSearch(ctx context.Context, query string, limit int) ([]models.Professional, error) {
	f.lexicalCalls++
	return f.lexical, nil
}

func (f *fakePros) Upsert(ctx context.Context, pro *models.Professional) error {
	return errors.New("not implemented")
}

type fakeEmbedder struct {
	vec   []float64
	err   error
	calls int
}

func (f *fakeEmbedder) EmbedQuery(ctx context.Context, text string) ([]float64, error) {
	f.calls++
	return f.vec, f.err
}

type memCache struct {
	entries map[string][]float64
}

func newMemCache() *memCache { return &memCache{entries: map[string][]float64{}} }

func (c *memCache) Get(ctx context.Context, query string) ([]float64, bool) {
	vec, ok := c.entries[query]
	return vec, ok
}

func (c *memCache) Set(ctx context.Context, query string, vec []float64) error {
	c.entries[query] = vec
	return nil
}

// alignedService embeds a service whose vector matches the query embedding
// exactly (similarity 1.0); orthogonal vectors score 0.
func alignedService(id string) models.Service {
	return models.Service{ID: id, Name: "servicio " + id, MinPrice: 150, Active: true, Embedding: []float64{1, 0}}
}

func orthogonalService(id string) models.Service {
	return models.Service{ID: id, Name: "servicio " + id, MinPrice: 150, Active: true, Embedding: []float64{0, 1}}
}

func newTestService(cat *fakeCatalog, pros *fakePros, emb *fakeEmbedder, cache EmbeddingCache) *DefaultSearchService {
	return &DefaultSearchService{
		Catalog:       cat,
		Professionals: pros,
		Embedder:      emb,
		Cache:         cache,
		Logger:        zap.NewNop(),
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	cat := &fakeCatalog{}
	pros := &fakePros{}
	emb := &fakeEmbedder{vec: []float64{1, 0}}
	svc := newTestService(cat, pros, emb, newMemCache())

	results, err := svc.Search(context.Background(), "   ")

	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, emb.calls, "empty query must not hit the embedding API")
}

func TestSearch_LexicalSkippedWhenSemanticCovers(t *testing.T) {
	cat := &fakeCatalog{}
	for i := 0; i < 5; i++ {
		cat.embedded = append(cat.embedded, alignedService(fmt.Sprintf("sem-%d", i)))
	}
	pros := &fakePros{lexical: []models.Professional{{ID: "pro-1", Name: "Juan", Rating: 4.8, Status: "active"}}}
	emb := &fakeEmbedder{vec: []float64{1, 0}}
	svc := newTestService(cat, pros, emb, newMemCache())

	results, err := svc.Search(context.Background(), "minisplit")

	require.NoError(t, err)
	assert.Len(t, results, 5)
	assert.Zero(t, cat.lexicalCalls, "lexical catalog round should be short-circuited")
	assert.Zero(t, pros.lexicalCalls, "lexical professional round should be short-circuited")
}

func TestSearch_LexicalFallbackWhenSemanticSparse(t *testing.T) {
	cat := &fakeCatalog{
		embedded: []models.Service{alignedService("sem-1"), orthogonalService("noise-1")},
		lexical:  []models.Service{{ID: "lex-1", Name: "Reparación de boiler", MinPrice: 200, Active: true}},
	}
	pros := &fakePros{lexical: []models.Professional{{ID: "pro-1", Name: "Juana", Discipline: "plomería", Rating: 4.9, Status: "active"}}}
	emb := &fakeEmbedder{vec: []float64{1, 0}}
	svc := newTestService(cat, pros, emb, newMemCache())

	results, err := svc.Search(context.Background(), "boiler")

	require.NoError(t, err)
	require.Len(t, results, 3)
	// Semantic hit first, then lexical services, then professionals.
	assert.Equal(t, "sem-1", results[0].ID)
	assert.Equal(t, "lex-1", results[1].ID)
	assert.Equal(t, "pro-1", results[2].ID)
	assert.Equal(t, models.ResultProfessional, results[2].Type)
	assert.Equal(t, 1, cat.lexicalCalls)
	assert.Equal(t, 1, pros.lexicalCalls)
}

func TestSearch_EmbedderFailureDegradesToLexical(t *testing.T) {
	cat := &fakeCatalog{
		embedded: []models.Service{alignedService("sem-1")},
		lexical:  []models.Service{{ID: "lex-1", Name: "Instalación eléctrica", MinPrice: 300, Active: true}},
	}
	pros := &fakePros{}
	emb := &fakeEmbedder{err: errors.New("quota exhausted")}
	svc := newTestService(cat, pros, emb, newMemCache())

	results, err := svc.Search(context.Background(), "contacto eléctrico")

	require.NoError(t, err, "collaborator failure must not surface as a search error")
	require.Len(t, results, 1)
	assert.Equal(t, "lex-1", results[0].ID)
}

func TestSearch_EmbeddingCacheHitSkipsAPI(t *testing.T) {
	cat := &fakeCatalog{embedded: []models.Service{alignedService("sem-1")}}
	pros := &fakePros{}
	emb := &fakeEmbedder{vec: []float64{1, 0}}
	cache := newMemCache()
	svc := newTestService(cat, pros, emb, cache)

	_, err := svc.Search(context.Background(), "minisplit")
	require.NoError(t, err)
	require.Equal(t, 1, emb.calls)

	_, err = svc.Search(context.Background(), "minisplit")
	require.NoError(t, err)
	assert.Equal(t, 1, emb.calls, "second identical query should be served from cache")
}
