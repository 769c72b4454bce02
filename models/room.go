package models

import "time"

// RoomType groups rooms that share pricing and capacity (e.g. "Deluxe").
type RoomType struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	PricePerNight float64   `bson:"price_per_night" json:"price_per_night"`
	MaxGuests     int       `bson:"max_guests" json:"max_guests"`
	IsActive      bool      `bson:"is_active" json:"is_active"`
	SortOrder     int       `bson:"sort_order" json:"sort_order"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Room is a single physical room. The availability grid never mutates
// rooms; they are fetched read-only per room type.
type Room struct {
	ID         string    `bson:"id" json:"id"`
	RoomTypeID string    `bson:"room_type_id" json:"room_type_id"`
	RoomNumber string    `bson:"room_number" json:"room_number"`
	Floor      int       `bson:"floor" json:"floor"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	IsActive   bool      `bson:"is_active" json:"is_active"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
