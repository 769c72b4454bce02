// File: database/repository/blocked/blocked.go
package blockedRepo

import (
	"context"

	"staygrid/database"
	"staygrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockedDateRepository provides access to admin-imposed room blocks.
type BlockedDateRepository interface {
	GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.BlockedDate, error)
	GetRoomIDsBlockedInRange(ctx context.Context, roomIDs []string, from, toExclusive string) ([]string, error)
	CreateMany(ctx context.Context, blocks []models.BlockedDate) error
	DeleteByRoomAndDates(ctx context.Context, roomID string, dates []string) (int64, error)
	DeleteOlderThan(ctx context.Context, date string) (int64, error)
	EnsureIndexes() error
}

type mongoBlockedRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedRepo constructs a new MongoDB BlockedDateRepository.
func NewMongoBlockedRepo() BlockedDateRepository {
	return &mongoBlockedRepo{
		coll: database.DB().Collection("room_blocked_dates"),
	}
}
