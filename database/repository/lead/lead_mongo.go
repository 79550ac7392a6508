package leadRepo

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

// MongoLeadRepo is the MongoDB-backed lead repository.
type MongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a lead repository over the "leads" collection.
func NewMongoLeadRepo() *MongoLeadRepo {
	return &MongoLeadRepo{coll: database.Collection("leads")}
}

func (r *MongoLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, lead); err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}
	return nil
}

func (r *MongoLeadRepo) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var lead models.Lead
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("lead %q not found", id)
		}
		return nil, fmt.Errorf("failed to fetch lead %q: %w", id, err)
	}
	return &lead, nil
}

func (r *MongoLeadRepo) ListByClient(ctx context.Context, clientID string) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"client_id": clientID}, opts)
	if err != nil {
		return nil, fmt.Errorf("lead list query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var leads []models.Lead
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, fmt.Errorf("failed to decode leads: %w", err)
	}
	return leads, nil
}

func (r *MongoLeadRepo) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update lead %q status: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("lead %q not found", id)
	}
	return nil
}
