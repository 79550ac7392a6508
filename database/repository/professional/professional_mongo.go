package professionalRepo

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

// MongoProfessionalRepo is the MongoDB-backed professional repository.
type MongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo returns a repository over the "professionals" collection.
func NewMongoProfessionalRepo() *MongoProfessionalRepo {
	return &MongoProfessionalRepo{coll: database.Collection("professionals")}
}

func (r *MongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var pro models.Professional
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&pro); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("professional %q not found", id)
		}
		return nil, fmt.Errorf("failed to fetch professional %q: %w", id, err)
	}
	return &pro, nil
}

func (r *MongoProfessionalRepo) LexicalSearch(ctx context.Context, query string, limit int) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{
		"status": "active",
		"$or": bson.A{
			bson.M{"name": bson.M{"$regex": query, "$options": "i"}},
			bson.M{"discipline": bson.M{"$regex": query, "$options": "i"}},
		},
	}
	// Highest-rated professionals first so truncation keeps the best matches.
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}, {Key: "completed_jobs", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("professional lexical search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var pros []models.Professional
	if err := cursor.All(ctx, &pros); err != nil {
		return nil, fmt.Errorf("failed to decode professionals: %w", err)
	}
	return pros, nil
}

func (r *MongoProfessionalRepo) Upsert(ctx context.Context, pro *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": pro.ID}, pro, opts); err != nil {
		return fmt.Errorf("failed to upsert professional %q: %w", pro.ID, err)
	}
	return nil
}
