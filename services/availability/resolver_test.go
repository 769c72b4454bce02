package availability

import (
	"testing"

	"staygrid/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildCellStatusMapBookedWinsOverBlocked(t *testing.T) {
	blocked := []models.BlockedDate{
		{RoomID: "room-a", Date: "2025-03-10", Reason: "maintenance"},
		{RoomID: "room-a", Date: "2025-03-11", Reason: "maintenance"},
	}
	bookings := []models.Booking{
		{RoomID: "room-a", CheckInDate: "2025-03-11", CheckOutDate: "2025-03-12", Status: models.BookingStatusConfirmed},
	}

	cells := BuildCellStatusMap(blocked, bookings)

	day10 := cells["room-a-2025-03-10"]
	assert.Equal(t, models.CellBlocked, day10.Status)
	assert.Equal(t, "maintenance", day10.Reason)

	// The 11th is both blocked and booked; the booking takes precedence.
	day11 := cells["room-a-2025-03-11"]
	assert.Equal(t, models.CellBooked, day11.Status)
	assert.Empty(t, day11.Reason)
}

func TestBuildCellStatusMapBookingCoversHalfOpenRange(t *testing.T) {
	bookings := []models.Booking{
		{RoomID: "room-a", CheckInDate: "2025-03-10", CheckOutDate: "2025-03-13", Status: models.BookingStatusConfirmed},
	}

	cells := BuildCellStatusMap(nil, bookings)

	assert.Equal(t, models.CellBooked, cells["room-a-2025-03-10"].Status)
	assert.Equal(t, models.CellBooked, cells["room-a-2025-03-12"].Status)

	// Checkout day is free again.
	_, present := cells["room-a-2025-03-13"]
	assert.False(t, present)
}

func TestBuildCellStatusMapSkipsCancelledBookings(t *testing.T) {
	bookings := []models.Booking{
		{RoomID: "room-a", CheckInDate: "2025-03-10", CheckOutDate: "2025-03-12", Status: models.BookingStatusCancelled},
		{RoomID: "room-b", CheckInDate: "2025-03-10", CheckOutDate: "2025-03-11", Status: models.BookingStatusCheckedIn},
	}

	cells := BuildCellStatusMap(nil, bookings)

	_, present := cells["room-a-2025-03-10"]
	assert.False(t, present)
	assert.Equal(t, models.CellBooked, cells["room-b-2025-03-10"].Status)
}

func TestBuildCellStatusMapIgnoresMalformedRows(t *testing.T) {
	blocked := []models.BlockedDate{
		{RoomID: "room-a", Date: "not-a-date"},
		{RoomID: "room-a", Date: "2025-03-10"},
	}
	bookings := []models.Booking{
		{RoomID: "room-b", CheckInDate: "garbage", CheckOutDate: "2025-03-12", Status: models.BookingStatusConfirmed},
	}

	cells := BuildCellStatusMap(blocked, bookings)
	assert.Len(t, cells, 1)
	assert.Equal(t, models.CellBlocked, cells["room-a-2025-03-10"].Status)
}

func TestResolveCellDefaultsToAvailable(t *testing.T) {
	cells := map[string]models.CellInfo{
		"room-a-2025-03-10": {Status: models.CellBlocked, Reason: "deep clean"},
	}

	assert.Equal(t, models.CellBlocked, ResolveCell(cells, "room-a-2025-03-10").Status)
	assert.Equal(t, models.CellAvailable, ResolveCell(cells, "room-a-2025-03-11").Status)
	assert.Equal(t, models.CellAvailable, ResolveCell(nil, "room-a-2025-03-11").Status)
}
