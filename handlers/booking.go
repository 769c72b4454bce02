package handlers

import (
	"net/http"
	"strconv"

	"staygrid/models"
	"staygrid/services/booking"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BookingHandler exposes booking creation, lookup, listing and cancellation.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking books the first free room of the requested type.
//
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	bk, err := h.Svc.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.Logger.Warn("Booking rejected", zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": bk})
}

// GetBooking returns one booking by id.
//
// GET /api/bookings/:bookingID
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.Svc.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("Failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ListBookings returns recent bookings, newest first.
//
// GET /api/bookings?limit=&offset=
func (h *BookingHandler) ListBookings(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	offset, _ := strconv.ParseInt(c.DefaultQuery("offset", "0"), 10, 64)
	bookings, err := h.Svc.ListBookings(c.Request.Context(), limit, offset)
	if err != nil {
		h.Logger.Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking cancels a booking, freeing its dates on the grid.
//
// POST /api/bookings/:bookingID/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Reason string `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)
	bk, err := h.Svc.CancelBooking(c.Request.Context(), c.Param("bookingID"), input.Reason)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("Failed to cancel booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}
