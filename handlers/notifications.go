package handlers

import (
	"net/http"
	"strconv"

	"staygrid/middleware"
	"staygrid/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler serves the admin's recent toast feed.
type NotificationHandler struct {
	Svc    notification.NotificationService
	Logger *zap.Logger
}

func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// Recent returns the latest toasts for the authenticated admin.
//
// GET /api/notifications?limit=
func (h *NotificationHandler) Recent(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	toasts, err := h.Svc.Recent(c.Request.Context(), middleware.AdminID(c), limit)
	if err != nil {
		h.Logger.Error("Failed to fetch notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": toasts})
}
