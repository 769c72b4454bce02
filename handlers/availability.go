package handlers

import (
	"net/http"

	"staygrid/models"
	"staygrid/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the calendar grid and room availability
// checks.
type AvailabilityHandler struct {
	Svc availability.AvailabilityService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc}
}

// GetCalendar returns rooms plus the resolved cell statuses for an
// inclusive [from, to] window, optionally filtered by room type.
//
// GET /api/availability/calendar?from=2025-03-01&to=2025-03-31&roomType=<id>
func (h *AvailabilityHandler) GetCalendar(c *gin.Context) {
	logger := getLogger(c)

	from, err := models.ParseCalendarDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date", "details": err.Error()})
		return
	}
	to, err := models.ParseCalendarDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date", "details": err.Error()})
		return
	}

	calendar, err := h.Svc.GetCalendar(c.Request.Context(), c.Query("roomType"), from, to)
	if err != nil {
		logger.Error("Failed to build calendar", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar"})
		return
	}
	c.JSON(http.StatusOK, calendar)
}

// CheckAvailability counts free rooms for a stay range.
//
// GET /api/availability/check?checkIn=2025-03-10&checkOut=2025-03-12&roomType=<id>
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	logger := getLogger(c)

	checkIn, err := models.ParseCalendarDate(c.Query("checkIn"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'checkIn' date", "details": err.Error()})
		return
	}
	checkOut, err := models.ParseCalendarDate(c.Query("checkOut"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'checkOut' date", "details": err.Error()})
		return
	}
	if !checkIn.Before(checkOut) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "checkOut must be after checkIn"})
		return
	}

	result, err := h.Svc.CheckAvailability(c.Request.Context(), checkIn, checkOut, c.Query("roomType"))
	if err != nil {
		logger.Error("Availability check failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Availability check failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}
