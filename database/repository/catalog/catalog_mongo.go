package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"oficio/database"
	"oficio/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 10 * time.Second

// MongoCatalogRepo is the MongoDB-backed catalog repository.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

// NewMongoCatalogRepo returns a catalog repository over the "services" collection.
func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: database.Collection("services")}
}

func (r *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service %q not found", id)
		}
		return nil, fmt.Errorf("failed to fetch service %q: %w", id, err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) ListByDiscipline(ctx context.Context, discipline string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"active": true}
	if discipline != "" {
		filter["discipline"] = discipline
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("catalog list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoCatalogRepo) LexicalSearch(ctx context.Context, query string, limit int) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"active": true,
		"$or": bson.A{
			bson.M{"name": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"description": bson.M{"$regex": query, "$options": "i"}},
		},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("catalog lexical search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoCatalogRepo) AllEmbedded(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"active":    true,
		"embedding": bson.M{"$exists": true, "$ne": bson.A{}},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("embedded catalog query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoCatalogRepo) Upsert(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	svc.UpdatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": svc.ID}, svc, opts); err != nil {
		return fmt.Errorf("failed to upsert service %q: %w", svc.ID, err)
	}
	return nil
}
