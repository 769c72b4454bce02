// File: services/booking/booking.go
package booking

import (
	"context"
	"fmt"

	blockedRepo "staygrid/database/repository/blocked"
	bookingRepo "staygrid/database/repository/booking"
	roomRepo "staygrid/database/repository/room"
	"staygrid/models"

	"go.uber.org/zap"
)

// BookingService creates and manages guest stay records.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListBookings(ctx context.Context, limit, offset int64) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Rooms    roomRepo.RoomRepository
	Blocked  blockedRepo.BlockedDateRepository
	Bookings bookingRepo.BookingRepository
	Logger   *zap.Logger
}

// CreateBooking assigns the first free active room of the requested type
// for [checkIn, checkOut), prices the stay and inserts it as confirmed.
// Rooms holding an overlapping non-cancelled booking or an admin block in
// the range are skipped.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	checkIn, err := models.ParseCalendarDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-in date: %w", err)
	}
	checkOut, err := models.ParseCalendarDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid check-out date: %w", err)
	}
	nights := len(models.DaysBetween(checkIn, checkOut))
	if nights == 0 {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}

	rt, err := s.Rooms.GetRoomTypeByID(ctx, req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("room type %s not found", req.RoomTypeID)
	}

	guests := req.NumGuests
	if guests <= 0 {
		guests = 1
	}
	if rt.MaxGuests > 0 && guests > rt.MaxGuests {
		return nil, fmt.Errorf("room type %s sleeps at most %d guests", rt.Name, rt.MaxGuests)
	}

	room, err := s.findAvailableRoom(ctx, rt.ID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, fmt.Errorf("no rooms available for selected dates")
	}

	booking := &models.Booking{
		UserID:       req.UserID,
		RoomID:       room.ID,
		RoomTypeID:   rt.ID,
		CheckInDate:  checkIn.String(),
		CheckOutDate: checkOut.String(),
		NumGuests:    guests,
		TotalPrice:   rt.PricePerNight * float64(nights),
		Status:       models.BookingStatusConfirmed,
		Notes:        req.Notes,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	if s.Logger != nil {
		s.Logger.Info("booking created",
			zap.String("bookingId", booking.ID),
			zap.String("roomId", room.ID),
			zap.String("checkIn", booking.CheckInDate),
			zap.String("checkOut", booking.CheckOutDate),
		)
	}
	return booking, nil
}

// findAvailableRoom returns the lowest-numbered free room of the type, or
// nil when every room is taken or blocked.
func (s *DefaultBookingService) findAvailableRoom(ctx context.Context, roomTypeID string, checkIn, checkOut models.CalendarDate) (*models.Room, error) {
	rooms, err := s.Rooms.GetActiveRooms(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	if len(rooms) == 0 {
		return nil, nil
	}

	roomIDs := make([]string, len(rooms))
	for i, r := range rooms {
		roomIDs[i] = r.ID
	}

	bookedIDs, err := s.Bookings.GetRoomIDsBookedInRange(ctx, roomIDs, checkIn.String(), checkOut.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked rooms: %w", err)
	}
	blockedIDs, err := s.Blocked.GetRoomIDsBlockedInRange(ctx, roomIDs, checkIn.String(), checkOut.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked rooms: %w", err)
	}

	taken := make(map[string]bool, len(bookedIDs)+len(blockedIDs))
	for _, id := range bookedIDs {
		taken[id] = true
	}
	for _, id := range blockedIDs {
		taken[id] = true
	}

	for i := range rooms {
		if !taken[rooms[i].ID] {
			return &rooms[i], nil
		}
	}
	return nil, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	booking, err := s.Bookings.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.Info("booking cancelled", zap.String("bookingId", id), zap.String("reason", reason))
	}
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Bookings.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListBookings(ctx context.Context, limit, offset int64) ([]models.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.Bookings.List(ctx, limit, offset)
}
