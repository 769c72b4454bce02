// File: database/repository/booking/booking.go
package bookingRepo

import (
	"context"

	"staygrid/database"
	"staygrid/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository provides access to guest stay records.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.Booking, error)
	GetRoomIDsBookedInRange(ctx context.Context, roomIDs []string, checkIn, checkOut string) ([]string, error)
	Create(ctx context.Context, booking *models.Booking) error
	Cancel(ctx context.Context, id, reason string) (*models.Booking, error)
	List(ctx context.Context, limit, offset int64) ([]models.Booking, error)
	EnsureIndexes() error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
