// File: database/repository/booking/crud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"staygrid/models"
)

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetForRoomsInRange returns every booking of the given rooms overlapping
// the inclusive [from, to] window, regardless of status. The caller decides
// what cancelled bookings mean; the cell status resolver ignores them.
func (r *mongoBookingRepo) GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room_id":        bson.M{"$in": roomIDs},
		"check_in_date":  bson.M{"$lte": to},
		"check_out_date": bson.M{"$gt": from},
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// GetRoomIDsBookedInRange returns the distinct rooms among roomIDs holding
// a non-cancelled booking that overlaps [checkIn, checkOut).
func (r *mongoBookingRepo) GetRoomIDsBookedInRange(ctx context.Context, roomIDs []string, checkIn, checkOut string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"room_id":        bson.M{"$in": roomIDs},
		"status":         bson.M{"$ne": models.BookingStatusCancelled},
		"check_in_date":  bson.M{"$lt": checkOut},
		"check_out_date": bson.M{"$gt": checkIn},
	}
	raw, err := r.coll.Distinct(ctx, "room_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked room ids: %w", err)
	}
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, id, reason string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{"$set": bson.M{
		"status":              models.BookingStatusCancelled,
		"cancelled_at":        now,
		"cancellation_reason": reason,
		"updated_at":          now,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *mongoBookingRepo) List(ctx context.Context, limit, offset int64) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
