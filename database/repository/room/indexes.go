// File: database/repository/room/indexes.go
package roomRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the rooms and room_types
// collections.
func (r *mongoRoomRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	roomIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "room_type_id", Value: 1}, {Key: "is_active", Value: 1}},
			Options: options.Index().SetName("type_active_idx"),
		},
		{
			Keys:    bson.D{{Key: "room_number", Value: 1}},
			Options: options.Index().SetName("room_number_idx"),
		},
	}
	if _, err := r.rooms.Indexes().CreateMany(ctx, roomIndexes); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}

	typeIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "is_active", Value: 1}, {Key: "sort_order", Value: 1}},
			Options: options.Index().SetName("active_sort_idx"),
		},
	}
	if _, err := r.types.Indexes().CreateMany(ctx, typeIndexes); err != nil {
		return fmt.Errorf("failed to create room type indexes: %w", err)
	}
	return nil
}
