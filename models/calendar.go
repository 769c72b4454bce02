package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// CalendarDate is a pure calendar date (year, month, day) with no time of
// day and no zone. It is distinct from a timestamp: a blocked date or a
// check-in day must not shift when rendered in another timezone, so the
// conversion to a time.Time happens only at the storage/network boundary,
// anchored at noon UTC.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

const calendarLayout = "2006-01-02"

// ParseCalendarDate parses an ISO date or date-time string by truncating it
// to its YYYY-MM-DD prefix. "2025-03-10T00:00:00Z" and "2025-03-10" both
// yield the same date.
func ParseCalendarDate(s string) (CalendarDate, error) {
	if idx := strings.IndexAny(s, "T "); idx >= 0 {
		s = s[:idx]
	}
	t, err := time.Parse(calendarLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// DateOf extracts the calendar date from a timestamp, in the timestamp's
// own location.
func DateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// NoonUTC converts the date to a timestamp anchored at 12:00 UTC. Noon
// keeps the date stable across every real-world UTC offset.
func (d CalendarDate) NoonUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// Next returns the following calendar day.
func (d CalendarDate) Next() CalendarDate {
	return DateOf(d.NoonUTC().AddDate(0, 0, 1))
}

// Before reports whether d is strictly earlier than other.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// IsZero reports whether d is the zero value.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// DaysBetween returns every day in the half-open range [from, to). The
// checkout day itself is excluded: a guest vacates on checkout day, which
// is immediately available again.
func DaysBetween(from, to CalendarDate) []CalendarDate {
	var days []CalendarDate
	for d := from; d.Before(to); d = d.Next() {
		days = append(days, d)
	}
	return days
}

func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
