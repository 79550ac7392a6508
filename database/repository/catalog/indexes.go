package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *MongoCatalogRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "discipline", Value: 1}, {Key: "active", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "name", Value: 1}},
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create catalog indexes: %w", err)
	}
	return nil
}
