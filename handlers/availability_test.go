package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staygrid/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAvailability struct {
	calendar *models.GridCalendar
	result   *models.AvailabilityResult
}

func (s *stubAvailability) GetCalendar(ctx context.Context, roomTypeID string, from, to models.CalendarDate) (*models.GridCalendar, error) {
	return s.calendar, nil
}

func (s *stubAvailability) CheckAvailability(ctx context.Context, checkIn, checkOut models.CalendarDate, roomTypeID string) (*models.AvailabilityResult, error) {
	return s.result, nil
}

func (s *stubAvailability) InvalidateCalendar(ctx context.Context, roomTypeID string) {}

func buildAvailabilityRouter(stub *stubAvailability) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAvailabilityHandler(stub)
	r.GET("/api/availability/calendar", h.GetCalendar)
	r.GET("/api/availability/check", h.CheckAvailability)
	return r
}

func TestGetCalendar(t *testing.T) {
	stub := &stubAvailability{
		calendar: &models.GridCalendar{
			From:  "2025-03-01",
			To:    "2025-03-31",
			Rooms: []models.Room{{ID: "room-a", RoomNumber: "101"}},
			Cells: map[string]models.CellInfo{
				"room-a-2025-03-06": {Status: models.CellBlocked, Reason: "painting"},
			},
		},
	}
	r := buildAvailabilityRouter(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/availability/calendar?from=2025-03-01&to=2025-03-31", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.GridCalendar
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got.Rooms, 1)
	assert.Equal(t, models.CellBlocked, got.Cells["room-a-2025-03-06"].Status)
}

func TestGetCalendarRejectsBadDates(t *testing.T) {
	r := buildAvailabilityRouter(&stubAvailability{})

	req := httptest.NewRequest(http.MethodGet, "/api/availability/calendar?from=03-01-2025&to=2025-03-31", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckAvailabilityValidatesRange(t *testing.T) {
	r := buildAvailabilityRouter(&stubAvailability{result: &models.AvailabilityResult{Available: true}})

	req := httptest.NewRequest(http.MethodGet, "/api/availability/check?checkIn=2025-03-12&checkOut=2025-03-10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/availability/check?checkIn=2025-03-10&checkOut=2025-03-12", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got models.AvailabilityResult
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.True(t, got.Available)
}
