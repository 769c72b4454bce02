package models

import (
	"fmt"
	"strings"
)

// CellStatus is the derived state of one (room, date) cell. It is never
// persisted; the map is rebuilt from blocked dates and bookings whenever
// either input changes.
type CellStatus string

const (
	CellAvailable CellStatus = "available"
	CellBlocked   CellStatus = "blocked"
	CellBooked    CellStatus = "booked"
)

// CellInfo carries the resolved status of a cell plus the block reason
// when the cell is blocked.
type CellInfo struct {
	Status CellStatus `json:"status"`
	Reason string     `json:"reason,omitempty"`
}

// CellKey builds the "{roomId}-{YYYY-MM-DD}" key used throughout the grid.
func CellKey(roomID string, date CalendarDate) string {
	return roomID + "-" + date.String()
}

// SplitCellKey recovers the room id and date from a cell key. Room ids may
// themselves contain dashes (UUIDs), so the date is taken from the fixed
// 10-character suffix.
func SplitCellKey(key string) (string, CalendarDate, error) {
	const dateLen = len("2006-01-02")
	if len(key) < dateLen+2 || key[len(key)-dateLen-1] != '-' {
		return "", CalendarDate{}, fmt.Errorf("malformed cell key %q", key)
	}
	roomID := key[:len(key)-dateLen-1]
	date, err := ParseCalendarDate(key[len(key)-dateLen:])
	if err != nil {
		return "", CalendarDate{}, fmt.Errorf("malformed cell key %q: %w", key, err)
	}
	if roomID == "" || strings.TrimSpace(roomID) == "" {
		return "", CalendarDate{}, fmt.Errorf("malformed cell key %q", key)
	}
	return roomID, date, nil
}

// GridCalendar is the response for the calendar query: the rooms of the
// requested type and the resolved status of every non-available cell in
// the window. Absent cells are available.
type GridCalendar struct {
	From  string              `json:"from"`
	To    string              `json:"to"`
	Rooms []Room              `json:"rooms"`
	Cells map[string]CellInfo `json:"cells"`
}
