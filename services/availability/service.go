// File: services/availability/service.go
package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staygrid/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RoomSource is the slice of the room repository the availability service
// needs.
type RoomSource interface {
	GetActiveRoomTypes(ctx context.Context) ([]models.RoomType, error)
	GetRoomTypeByID(ctx context.Context, id string) (*models.RoomType, error)
	GetActiveRooms(ctx context.Context, roomTypeID string) ([]models.Room, error)
}

// BlockedSource provides blocked-date lookups for a set of rooms.
type BlockedSource interface {
	GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.BlockedDate, error)
	GetRoomIDsBlockedInRange(ctx context.Context, roomIDs []string, from, toExclusive string) ([]string, error)
}

// BookingSource provides booking lookups for a set of rooms.
type BookingSource interface {
	GetForRoomsInRange(ctx context.Context, roomIDs []string, from, to string) ([]models.Booking, error)
	GetRoomIDsBookedInRange(ctx context.Context, roomIDs []string, checkIn, checkOut string) ([]string, error)
}

// AvailabilityService computes the admin calendar grid and room
// availability counts.
type AvailabilityService interface {
	GetCalendar(ctx context.Context, roomTypeID string, from, to models.CalendarDate) (*models.GridCalendar, error)
	CheckAvailability(ctx context.Context, checkIn, checkOut models.CalendarDate, roomTypeID string) (*models.AvailabilityResult, error)
	InvalidateCalendar(ctx context.Context, roomTypeID string)
}

// DefaultAvailabilityService is the production implementation. Calendar
// snapshots are cached briefly in Redis and invalidated after every
// block/unblock mutation, so the grid always refetches fresh state after a
// successful write.
type DefaultAvailabilityService struct {
	Rooms    RoomSource
	Blocked  BlockedSource
	Bookings BookingSource
	Cache    *redis.Client
	CacheTTL time.Duration
	Logger   *zap.Logger
}

const calendarKeyPrefix = "calendar:"

func calendarCacheKey(roomTypeID, from, to string) string {
	return fmt.Sprintf("%s%s:%s:%s", calendarKeyPrefix, roomTypeID, from, to)
}

// GetCalendar returns the rooms of a room type and the resolved status of
// every blocked or booked cell in the inclusive [from, to] window.
func (s *DefaultAvailabilityService) GetCalendar(ctx context.Context, roomTypeID string, from, to models.CalendarDate) (*models.GridCalendar, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("invalid window: %s is after %s", from, to)
	}

	key := calendarCacheKey(roomTypeID, from.String(), to.String())
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached models.GridCalendar
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	rooms, err := s.Rooms.GetActiveRooms(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}

	roomIDs := make([]string, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	calendar := &models.GridCalendar{
		From:  from.String(),
		To:    to.String(),
		Rooms: rooms,
		Cells: map[string]models.CellInfo{},
	}

	if len(roomIDs) > 0 {
		blocked, err := s.Blocked.GetForRoomsInRange(ctx, roomIDs, from.String(), to.String())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
		}
		bookings, err := s.Bookings.GetForRoomsInRange(ctx, roomIDs, from.String(), to.String())
		if err != nil {
			return nil, fmt.Errorf("failed to fetch bookings: %w", err)
		}
		calendar.Cells = BuildCellStatusMap(blocked, bookings)
	}

	if s.Cache != nil {
		ttl := s.CacheTTL
		if ttl == 0 {
			ttl = 30 * time.Second
		}
		if data, err := json.Marshal(calendar); err == nil {
			if err := s.Cache.Set(ctx, key, data, ttl).Err(); err != nil && s.Logger != nil {
				s.Logger.Warn("failed to cache calendar", zap.Error(err))
			}
		}
	}

	return calendar, nil
}

// InvalidateCalendar drops every cached calendar window for the room type
// (and the unfiltered view). Called after block/unblock mutations.
func (s *DefaultAvailabilityService) InvalidateCalendar(ctx context.Context, roomTypeID string) {
	if s.Cache == nil {
		return
	}
	for _, prefix := range []string{roomTypeID, ""} {
		pattern := calendarKeyPrefix + prefix + ":*"
		iter := s.Cache.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := s.Cache.Del(ctx, iter.Val()).Err(); err != nil && s.Logger != nil {
				s.Logger.Warn("failed to invalidate calendar cache", zap.Error(err))
			}
		}
	}
}

// CheckAvailability counts active rooms free for the half-open
// [checkIn, checkOut) range, excluding rooms with overlapping non-cancelled
// bookings or blocked dates, and prices the stay.
func (s *DefaultAvailabilityService) CheckAvailability(ctx context.Context, checkIn, checkOut models.CalendarDate, roomTypeID string) (*models.AvailabilityResult, error) {
	nights := len(models.DaysBetween(checkIn, checkOut))
	if nights == 0 {
		return nil, fmt.Errorf("check-out date must be after check-in date")
	}

	result := &models.AvailabilityResult{
		CheckInDate:  checkIn.String(),
		CheckOutDate: checkOut.String(),
	}

	var pricePerNight *float64
	if roomTypeID != "" {
		rt, err := s.Rooms.GetRoomTypeByID(ctx, roomTypeID)
		if err != nil {
			// Unknown room type means nothing is available, not a failure.
			return result, nil
		}
		result.RoomTypeID = rt.ID
		result.RoomTypeName = rt.Name
		pricePerNight = &rt.PricePerNight
	} else {
		types, err := s.Rooms.GetActiveRoomTypes(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch room types: %w", err)
		}
		for _, rt := range types {
			price := rt.PricePerNight
			if pricePerNight == nil || price < *pricePerNight {
				pricePerNight = &price
			}
		}
	}

	rooms, err := s.Rooms.GetActiveRooms(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	if len(rooms) == 0 {
		return result, nil
	}

	roomIDs := make([]string, len(rooms))
	for i, room := range rooms {
		roomIDs[i] = room.ID
	}

	bookedIDs, err := s.Bookings.GetRoomIDsBookedInRange(ctx, roomIDs, checkIn.String(), checkOut.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked rooms: %w", err)
	}
	blockedIDs, err := s.Blocked.GetRoomIDsBlockedInRange(ctx, roomIDs, checkIn.String(), checkOut.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked rooms: %w", err)
	}

	unavailable := make(map[string]bool, len(bookedIDs)+len(blockedIDs))
	for _, id := range bookedIDs {
		unavailable[id] = true
	}
	for _, id := range blockedIDs {
		unavailable[id] = true
	}

	for _, room := range rooms {
		if !unavailable[room.ID] {
			result.AvailableRooms++
		}
	}
	result.Available = result.AvailableRooms > 0

	if pricePerNight != nil {
		result.PricePerNight = pricePerNight
		total := *pricePerNight * float64(nights)
		result.TotalPrice = &total
	}

	return result, nil
}
