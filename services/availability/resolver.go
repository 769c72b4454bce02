// File: services/availability/resolver.go
package availability

import (
	"staygrid/models"
)

// BuildCellStatusMap derives the per-(room, date) cell status from the two
// fetched collections. It is a pure function of its inputs and is rebuilt
// wholesale whenever either collection changes, never patched
// incrementally.
//
// The blocked pass runs first and the booked pass second, overwriting any
// overlap: a confirmed reservation cannot be overridden by an availability
// block, so booked always wins. Keys absent from the map are available.
func BuildCellStatusMap(blocked []models.BlockedDate, bookings []models.Booking) map[string]models.CellInfo {
	cells := make(map[string]models.CellInfo)

	for _, b := range blocked {
		date, err := models.ParseCalendarDate(b.Date)
		if err != nil {
			continue
		}
		cells[models.CellKey(b.RoomID, date)] = models.CellInfo{
			Status: models.CellBlocked,
			Reason: b.Reason,
		}
	}

	for _, bk := range bookings {
		if bk.IsCancelled() {
			continue
		}
		checkIn, err := models.ParseCalendarDate(bk.CheckInDate)
		if err != nil {
			continue
		}
		checkOut, err := models.ParseCalendarDate(bk.CheckOutDate)
		if err != nil {
			continue
		}
		// [checkIn, checkOut): the guest vacates on checkout day, which is
		// immediately available again.
		for _, day := range models.DaysBetween(checkIn, checkOut) {
			cells[models.CellKey(bk.RoomID, day)] = models.CellInfo{Status: models.CellBooked}
		}
	}

	return cells
}

// ResolveCell looks a single cell up in the derived map, defaulting to
// available.
func ResolveCell(cells map[string]models.CellInfo, key string) models.CellInfo {
	if info, ok := cells[key]; ok {
		return info
	}
	return models.CellInfo{Status: models.CellAvailable}
}
