package models

import "time"

// BlockedDate is an admin-imposed unavailability on a single room/date,
// not tied to a reservation.
type BlockedDate struct {
	ID        string    `bson:"id" json:"id"`
	RoomID    string    `bson:"room_id" json:"room_id"`
	Date      string    `bson:"date" json:"date"` // YYYY-MM-DD
	Reason    string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	CreatedBy string    `bson:"created_by,omitempty" json:"created_by,omitempty"`
}
