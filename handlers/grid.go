package handlers

import (
	"errors"
	"net/http"

	"staygrid/middleware"
	"staygrid/models"
	"staygrid/services/grid"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GridHandler exposes the availability grid selection session: open and
// navigate a session, feed it pointer gestures, and dispatch the bulk
// block/unblock mutations.
type GridHandler struct {
	Svc    grid.GridSessionService
	Logger *zap.Logger
}

// NewGridHandler constructs a GridHandler.
func NewGridHandler(svc grid.GridSessionService, logger *zap.Logger) *GridHandler {
	return &GridHandler{Svc: svc, Logger: logger}
}

type gridWindowInput struct {
	From       string `json:"from" binding:"required"`
	To         string `json:"to" binding:"required"`
	RoomTypeID string `json:"roomTypeId"`
}

type gridCellInput struct {
	CellKey string `json:"cellKey" binding:"required"`
}

// gridError maps service failures to HTTP responses. User-correctable
// grid errors never surface as 5xx.
func gridError(c *gin.Context, err error) {
	var ge *grid.GridError
	switch {
	case errors.Is(err, grid.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "grid session not found or expired"})
	case errors.As(err, &ge):
		status := http.StatusBadRequest
		if ge.Code == "validation" {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": ge.Message})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "grid operation failed"})
	}
}

// OpenSession creates a selection session for a month window.
//
// POST /api/grid/session
func (h *GridHandler) OpenSession(c *gin.Context) {
	var input gridWindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	from, err := models.ParseCalendarDate(input.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date", "details": err.Error()})
		return
	}
	to, err := models.ParseCalendarDate(input.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date", "details": err.Error()})
		return
	}

	session, err := h.Svc.Open(c.Request.Context(), middleware.AdminID(c), from, to, input.RoomTypeID)
	if err != nil {
		h.Logger.Error("Failed to open grid session", zap.Error(err))
		gridError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

// GetSession returns the current session state.
//
// GET /api/grid/session/:sessionID
func (h *GridHandler) GetSession(c *gin.Context) {
	session, err := h.Svc.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// NavigateSession moves the session to a new month window or room type
// filter, clearing the selection.
//
// PUT /api/grid/session/:sessionID/window
func (h *GridHandler) NavigateSession(c *gin.Context) {
	var input gridWindowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	from, err := models.ParseCalendarDate(input.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'from' date", "details": err.Error()})
		return
	}
	to, err := models.ParseCalendarDate(input.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'to' date", "details": err.Error()})
		return
	}

	session, err := h.Svc.Navigate(c.Request.Context(), c.Param("sessionID"), from, to, input.RoomTypeID)
	if err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// gesture runs one pointer gesture against the session.
func (h *GridHandler) gesture(c *gin.Context, apply func(sessionID, cellKey string) (*models.GridSessionResponse, error)) {
	var input gridCellInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := apply(c.Param("sessionID"), input.CellKey)
	if err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PointerDown starts a gesture on a cell.
//
// POST /api/grid/session/:sessionID/pointer-down
func (h *GridHandler) PointerDown(c *gin.Context) {
	h.gesture(c, func(sessionID, cellKey string) (*models.GridSessionResponse, error) {
		return h.Svc.PointerDown(c.Request.Context(), sessionID, cellKey)
	})
}

// PointerEnter extends an in-flight drag onto a cell.
//
// POST /api/grid/session/:sessionID/pointer-enter
func (h *GridHandler) PointerEnter(c *gin.Context) {
	h.gesture(c, func(sessionID, cellKey string) (*models.GridSessionResponse, error) {
		return h.Svc.PointerEnter(c.Request.Context(), sessionID, cellKey)
	})
}

// PointerUp ends the physical gesture.
//
// POST /api/grid/session/:sessionID/pointer-up
func (h *GridHandler) PointerUp(c *gin.Context) {
	resp, err := h.Svc.PointerUp(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Click applies the tap decision on a cell.
//
// POST /api/grid/session/:sessionID/click
func (h *GridHandler) Click(c *gin.Context) {
	h.gesture(c, func(sessionID, cellKey string) (*models.GridSessionResponse, error) {
		return h.Svc.Click(c.Request.Context(), sessionID, cellKey)
	})
}

// BlockSelection blocks every selected date with the given reason.
//
// POST /api/grid/session/:sessionID/block
func (h *GridHandler) BlockSelection(c *gin.Context) {
	var input struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	resp, err := h.Svc.BlockSelection(c.Request.Context(), c.Param("sessionID"), input.Reason)
	if err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UnblockSelection removes the blocks on the selected dates.
//
// POST /api/grid/session/:sessionID/unblock
func (h *GridHandler) UnblockSelection(c *gin.Context) {
	resp, err := h.Svc.UnblockSelection(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CloseSession discards the session.
//
// DELETE /api/grid/session/:sessionID
func (h *GridHandler) CloseSession(c *gin.Context) {
	if err := h.Svc.Close(c.Request.Context(), c.Param("sessionID")); err != nil {
		gridError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}
