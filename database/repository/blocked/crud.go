// File: database/repository/blocked/crud.go
package blockedRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staygrid/models"
)

// GetForRoomsInRange returns blocks for the given rooms whose date falls in
// the inclusive [from, to] window. Dates are YYYY-MM-DD strings, so string
// comparison orders them correctly.
func (r *mongoBlockedRepo) GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room_id": bson.M{"$in": roomIDs},
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.BlockedDate
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding blocked dates: %w", err)
	}
	return blocks, nil
}

// GetRoomIDsBlockedInRange returns the distinct rooms among roomIDs that
// have at least one block in [from, toExclusive).
func (r *mongoBlockedRepo) GetRoomIDsBlockedInRange(ctx context.Context, roomIDs []string, from, toExclusive string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room_id": bson.M{"$in": roomIDs},
		"date":    bson.M{"$gte": from, "$lt": toExclusive},
	}
	raw, err := r.coll.Distinct(ctx, "room_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked room ids: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

func (r *mongoBlockedRepo) CreateMany(ctx context.Context, blocks []models.BlockedDate) error {
	if len(blocks) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(blocks))
	now := time.Now()
	for i, b := range blocks {
		if b.ID == "" {
			b.ID = uuid.New().String()
		}
		if b.CreatedAt.IsZero() {
			b.CreatedAt = now
		}
		docs[i] = b
	}
	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true))
	if err != nil {
		return fmt.Errorf("failed to insert blocked dates: %w", err)
	}
	return nil
}

func (r *mongoBlockedRepo) DeleteByRoomAndDates(ctx context.Context, roomID string, dates []string) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{
		"room_id": roomID,
		"date":    bson.M{"$in": dates},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete blocked dates: %w", err)
	}
	if res.DeletedCount == 0 {
		return 0, mongo.ErrNoDocuments
	}
	return res.DeletedCount, nil
}

// DeleteOlderThan removes blocks strictly before the given date. Used by
// the nightly purge worker.
func (r *mongoBlockedRepo) DeleteOlderThan(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("failed to purge blocked dates: %w", err)
	}
	return res.DeletedCount, nil
}
