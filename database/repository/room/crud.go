// File: database/repository/room/crud.go
package roomRepo

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

func (r *mongoRoomRepo) GetActiveRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.types.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room types: %w", err)
	}
	defer cursor.Close(ctx)

	var types []models.RoomType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, fmt.Errorf("error decoding room types: %w", err)
	}
	return types, nil
}

func (r *mongoRoomRepo) GetRoomTypeByID(ctx context.Context, id string) (*models.RoomType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rt models.RoomType
	err := r.types.FindOne(ctx, bson.M{"id": id, "is_active": true}).Decode(&rt)
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// GetActiveRooms returns active rooms, optionally filtered by room type.
// Inactive rooms never appear on the grid.
func (r *mongoRoomRepo) GetActiveRooms(ctx context.Context, roomTypeID string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"is_active": true}
	if roomTypeID != "" {
		filter["room_type_id"] = roomTypeID
	}
	opts := options.Find().SetSort(bson.D{{Key: "room_number", Value: 1}})
	cursor, err := r.rooms.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (r *mongoRoomRepo) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var room models.Room
	err := r.rooms.FindOne(ctx, bson.M{"id": id}).Decode(&room)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *mongoRoomRepo) CreateRoomType(ctx context.Context, rt *models.RoomType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if rt.ID == "" {
		rt.ID = uuid.New().String()
	}
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	_, err := r.types.InsertOne(ctx, rt)
	return err
}

func (r *mongoRoomRepo) CreateRoom(ctx context.Context, room *models.Room) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if room.ID == "" {
		room.ID = uuid.New().String()
	}
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now
	_, err := r.rooms.InsertOne(ctx, room)
	return err
}

func (r *mongoRoomRepo) SetRoomActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.rooms.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$set": bson.M{"is_active": active, "updated_at": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
