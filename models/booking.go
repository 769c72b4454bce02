package models

import "time"

// Booking statuses. Cancelled bookings are excluded from all occupancy math.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCheckedIn  = "checked_in"
	BookingStatusCheckedOut = "checked_out"
	BookingStatusCancelled  = "cancelled"
	BookingStatusNoShow     = "no_show"
)

// Booking represents a guest stay record spanning [check-in, check-out).
// The check-out date is an exclusive upper bound.
type Booking struct {
	ID                 string     `bson:"id" json:"id"`
	UserID             string     `bson:"user_id" json:"user_id"`
	RoomID             string     `bson:"room_id" json:"room_id"`
	RoomTypeID         string     `bson:"room_type_id" json:"room_type_id"`
	CheckInDate        string     `bson:"check_in_date" json:"check_in_date"`   // YYYY-MM-DD
	CheckOutDate       string     `bson:"check_out_date" json:"check_out_date"` // YYYY-MM-DD
	NumGuests          int        `bson:"num_guests" json:"num_guests"`
	TotalPrice         float64    `bson:"total_price" json:"total_price"`
	Status             string     `bson:"status" json:"status"`
	Notes              string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CancelledAt        *time.Time `bson:"cancelled_at,omitempty" json:"cancelled_at,omitempty"`
	CancellationReason string     `bson:"cancellation_reason,omitempty" json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `bson:"updated_at" json:"updated_at"`
}

// Nights returns the stay length in nights, zero if the dates are malformed.
func (b Booking) Nights() int {
	in, err := ParseCalendarDate(b.CheckInDate)
	if err != nil {
		return 0
	}
	out, err := ParseCalendarDate(b.CheckOutDate)
	if err != nil {
		return 0
	}
	return len(DaysBetween(in, out))
}

// IsCancelled reports whether the booking has been cancelled.
func (b Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	RoomTypeID   string `json:"room_type_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`
	CheckOutDate string `json:"check_out_date" binding:"required"`
	NumGuests    int    `json:"num_guests"`
	Notes        string `json:"notes,omitempty"`
}

// AvailabilityResult summarises how many rooms of a type are free for a
// date range, with pricing.
type AvailabilityResult struct {
	Available      bool     `json:"available"`
	RoomTypeID     string   `json:"room_type_id,omitempty"`
	RoomTypeName   string   `json:"room_type_name,omitempty"`
	CheckInDate    string   `json:"check_in_date"`
	CheckOutDate   string   `json:"check_out_date"`
	AvailableRooms int      `json:"available_rooms"`
	PricePerNight  *float64 `json:"price_per_night,omitempty"`
	TotalPrice     *float64 `json:"total_price,omitempty"`
}
