package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseCalendarDateTruncatesTime(t *testing.T) {
	cases := []string{
		"2025-03-10",
		"2025-03-10T00:00:00Z",
		"2025-03-10T23:59:59+14:00",
		"2025-03-10 15:04:05",
	}
	for _, in := range cases {
		d, err := ParseCalendarDate(in)
		assert.NoError(t, err, in)
		assert.Equal(t, "2025-03-10", d.String(), in)
	}
}

func TestParseCalendarDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "10/03/2025", "2025-13-01", "not-a-date"} {
		_, err := ParseCalendarDate(in)
		assert.Error(t, err, in)
	}
}

func TestNoonUTCKeepsDateStableAcrossOffsets(t *testing.T) {
	d := CalendarDate{Year: 2025, Month: time.March, Day: 10}
	ts := d.NoonUTC()

	assert.Equal(t, 12, ts.Hour())
	assert.Equal(t, time.UTC, ts.Location())

	// The date must survive conversion to the extreme real-world offsets.
	west := time.FixedZone("UTC-12", -12*3600)
	east := time.FixedZone("UTC+14", 14*3600)
	assert.Equal(t, 10, ts.In(west).Day())
	assert.Equal(t, 10, ts.In(east).Day())
}

func TestDaysBetweenExcludesCheckout(t *testing.T) {
	from, _ := ParseCalendarDate("2025-03-10")
	to, _ := ParseCalendarDate("2025-03-13")

	days := DaysBetween(from, to)
	assert.Len(t, days, 3)
	assert.Equal(t, "2025-03-10", days[0].String())
	assert.Equal(t, "2025-03-12", days[2].String())

	assert.Empty(t, DaysBetween(from, from))
	assert.Empty(t, DaysBetween(to, from))
}

func TestNextCrossesMonthAndYear(t *testing.T) {
	d, _ := ParseCalendarDate("2025-12-31")
	assert.Equal(t, "2026-01-01", d.Next().String())

	d, _ = ParseCalendarDate("2024-02-28")
	assert.Equal(t, "2024-02-29", d.Next().String())
}

func TestSplitCellKeyWithUUIDRoomID(t *testing.T) {
	roomID := "7b9e4d1c-03aa-4b5f-8a2e-91c0de77f614"
	date, _ := ParseCalendarDate("2025-03-10")
	key := CellKey(roomID, date)

	gotRoom, gotDate, err := SplitCellKey(key)
	assert.NoError(t, err)
	assert.Equal(t, roomID, gotRoom)
	assert.Equal(t, date, gotDate)
}

func TestSplitCellKeyMalformed(t *testing.T) {
	for _, key := range []string{"", "2025-03-10", "-2025-03-10", "room1", "room1-2025-99-10"} {
		_, _, err := SplitCellKey(key)
		assert.Error(t, err, key)
	}
}

func TestCalendarDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseCalendarDate("2025-03-10")
	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2025-03-10"`, string(data))

	var out CalendarDate
	assert.NoError(t, json.Unmarshal([]byte(`"2025-03-10T08:00:00Z"`), &out))
	assert.Equal(t, d, out)
}
