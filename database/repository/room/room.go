// File: database/repository/room/room.go
package roomRepo

import (
	"context"

	"staygrid/database"
	"staygrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RoomRepository provides access to rooms and room types.
type RoomRepository interface {
	GetActiveRoomTypes(ctx context.Context) ([]models.RoomType, error)
	GetRoomTypeByID(ctx context.Context, id string) (*models.RoomType, error)
	GetActiveRooms(ctx context.Context, roomTypeID string) ([]models.Room, error)
	GetRoomByID(ctx context.Context, id string) (*models.Room, error)
	CreateRoomType(ctx context.Context, rt *models.RoomType) error
	CreateRoom(ctx context.Context, room *models.Room) error
	SetRoomActive(ctx context.Context, id string, active bool) error
	EnsureIndexes() error
}

type mongoRoomRepo struct {
	rooms *mongo.Collection
	types *mongo.Collection
}

// NewMongoRoomRepo constructs a new MongoDB RoomRepository.
func NewMongoRoomRepo() RoomRepository {
	db := database.DB()
	return &mongoRoomRepo{
		rooms: db.Collection("rooms"),
		types: db.Collection("room_types"),
	}
}
