package handlers

import (
	"net/http"

	"staygrid/models"
	"staygrid/services/room"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RoomHandler serves the room and room type catalogue.
type RoomHandler struct {
	Svc    room.RoomService
	Logger *zap.Logger
}

func NewRoomHandler(svc room.RoomService, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{Svc: svc, Logger: logger}
}

// ListRoomTypes returns active room types in display order.
//
// GET /api/rooms/types
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	types, err := h.Svc.GetRoomTypes(c.Request.Context())
	if err != nil {
		h.Logger.Error("Failed to list room types", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list room types"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roomTypes": types})
}

// ListRooms returns active rooms, optionally filtered by room type.
//
// GET /api/rooms?roomType=...
func (h *RoomHandler) ListRooms(c *gin.Context) {
	rooms, err := h.Svc.GetRooms(c.Request.Context(), c.Query("roomType"))
	if err != nil {
		h.Logger.Error("Failed to list rooms", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rooms"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rooms": rooms})
}

// CreateRoomType adds a room type to the catalogue.
//
// POST /api/rooms/types
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var rt models.RoomType
	if err := c.ShouldBindJSON(&rt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if rt.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	if err := h.Svc.CreateRoomType(c.Request.Context(), &rt); err != nil {
		h.Logger.Error("Failed to create room type", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room type"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"roomType": rt})
}

// CreateRoom adds a physical room.
//
// POST /api/rooms
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var r models.Room
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if r.RoomTypeID == "" || r.RoomNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "roomTypeId and roomNumber are required"})
		return
	}
	if err := h.Svc.CreateRoom(c.Request.Context(), &r); err != nil {
		h.Logger.Error("Failed to create room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create room"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"room": r})
}

// DeactivateRoom removes a room from the grid without deleting its history.
//
// DELETE /api/rooms/:roomID
func (h *RoomHandler) DeactivateRoom(c *gin.Context) {
	if err := h.Svc.DeactivateRoom(c.Request.Context(), c.Param("roomID")); err != nil {
		h.Logger.Error("Failed to deactivate room", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deactivate room"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}
