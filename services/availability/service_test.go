package availability

import (
	"context"
	"testing"

	"staygrid/models"

	"github.com/stretchr/testify/assert"
)

type fakeRoomSource struct {
	types []models.RoomType
	rooms []models.Room
}

func (f *fakeRoomSource) GetActiveRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return f.types, nil
}

func (f *fakeRoomSource) GetRoomTypeByID(ctx context.Context, id string) (*models.RoomType, error) {
	for i := range f.types {
		if f.types[i].ID == id {
			return &f.types[i], nil
		}
	}
	return nil, assert.AnError
}

func (f *fakeRoomSource) GetActiveRooms(ctx context.Context, roomTypeID string) ([]models.Room, error) {
	if roomTypeID == "" {
		return f.rooms, nil
	}
	var out []models.Room
	for _, r := range f.rooms {
		if r.RoomTypeID == roomTypeID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeBlockedSource struct {
	blocked    []models.BlockedDate
	blockedIDs []string
}

func (f *fakeBlockedSource) GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.BlockedDate, error) {
	return f.blocked, nil
}

func (f *fakeBlockedSource) GetRoomIDsBlockedInRange(ctx context.Context, roomIDs []string, from, toExclusive string) ([]string, error) {
	return f.blockedIDs, nil
}

type fakeBookingSource struct {
	bookings  []models.Booking
	bookedIDs []string
}

func (f *fakeBookingSource) GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingSource) GetRoomIDsBookedInRange(ctx context.Context, roomIDs []string, checkIn, checkOut string) ([]string, error) {
	return f.bookedIDs, nil
}

func date(t *testing.T, s string) models.CalendarDate {
	t.Helper()
	d, err := models.ParseCalendarDate(s)
	assert.NoError(t, err)
	return d
}

func TestGetCalendarResolvesCells(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Rooms: &fakeRoomSource{
			rooms: []models.Room{
				{ID: "room-a", RoomTypeID: "type-1", RoomNumber: "101"},
				{ID: "room-b", RoomTypeID: "type-1", RoomNumber: "102"},
			},
		},
		Blocked: &fakeBlockedSource{
			blocked: []models.BlockedDate{{RoomID: "room-a", Date: "2025-03-06", Reason: "painting"}},
		},
		Bookings: &fakeBookingSource{
			bookings: []models.Booking{
				{RoomID: "room-b", CheckInDate: "2025-03-05", CheckOutDate: "2025-03-07", Status: models.BookingStatusConfirmed},
			},
		},
	}

	cal, err := svc.GetCalendar(context.Background(), "type-1", date(t, "2025-03-01"), date(t, "2025-03-31"))
	assert.NoError(t, err)
	assert.Len(t, cal.Rooms, 2)
	assert.Equal(t, models.CellBlocked, cal.Cells["room-a-2025-03-06"].Status)
	assert.Equal(t, models.CellBooked, cal.Cells["room-b-2025-03-05"].Status)
	assert.Equal(t, models.CellBooked, cal.Cells["room-b-2025-03-06"].Status)
	_, checkout := cal.Cells["room-b-2025-03-07"]
	assert.False(t, checkout)
}

func TestGetCalendarRejectsInvertedWindow(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Rooms:    &fakeRoomSource{},
		Blocked:  &fakeBlockedSource{},
		Bookings: &fakeBookingSource{},
	}
	_, err := svc.GetCalendar(context.Background(), "", date(t, "2025-03-31"), date(t, "2025-03-01"))
	assert.Error(t, err)
}

func TestCheckAvailabilityCountsFreeRooms(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Rooms: &fakeRoomSource{
			types: []models.RoomType{{ID: "type-1", Name: "Deluxe", PricePerNight: 120}},
			rooms: []models.Room{
				{ID: "room-a", RoomTypeID: "type-1"},
				{ID: "room-b", RoomTypeID: "type-1"},
				{ID: "room-c", RoomTypeID: "type-1"},
			},
		},
		Blocked:  &fakeBlockedSource{blockedIDs: []string{"room-a"}},
		Bookings: &fakeBookingSource{bookedIDs: []string{"room-b"}},
	}

	res, err := svc.CheckAvailability(context.Background(), date(t, "2025-03-10"), date(t, "2025-03-12"), "type-1")
	assert.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 1, res.AvailableRooms)
	assert.Equal(t, "Deluxe", res.RoomTypeName)
	if assert.NotNil(t, res.TotalPrice) {
		assert.Equal(t, 240.0, *res.TotalPrice)
	}
}

func TestCheckAvailabilityUnknownTypeIsEmptyNotError(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Rooms:    &fakeRoomSource{},
		Blocked:  &fakeBlockedSource{},
		Bookings: &fakeBookingSource{},
	}

	res, err := svc.CheckAvailability(context.Background(), date(t, "2025-03-10"), date(t, "2025-03-12"), "ghost")
	assert.NoError(t, err)
	assert.False(t, res.Available)
	assert.Zero(t, res.AvailableRooms)
}

func TestCheckAvailabilityRejectsZeroNights(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Rooms:    &fakeRoomSource{},
		Blocked:  &fakeBlockedSource{},
		Bookings: &fakeBookingSource{},
	}
	_, err := svc.CheckAvailability(context.Background(), date(t, "2025-03-10"), date(t, "2025-03-10"), "")
	assert.Error(t, err)
}
