// File: services/notification/notification.go
package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"staygrid/models"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NotificationService records transient success/error toasts for admins.
type NotificationService interface {
	Push(ctx context.Context, adminID, level, message string) (*models.Toast, error)
	Recent(ctx context.Context, adminID string, limit int64) ([]models.Toast, error)
}

// DefaultNotificationService keeps a capped recent-toast list per admin in
// Redis.
type DefaultNotificationService struct {
	Client *redis.Client
	Logger *zap.Logger
	// Keep holds how many recent toasts survive per admin.
	Keep int64
}

func notifyKey(adminID string) string { return "toasts:" + adminID }

func (s *DefaultNotificationService) Push(ctx context.Context, adminID, level, message string) (*models.Toast, error) {
	toast := &models.Toast{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if s.Logger != nil {
		s.Logger.Info("admin toast",
			zap.String("adminId", adminID),
			zap.String("level", level),
			zap.String("message", message),
		)
	}
	if s.Client == nil || adminID == "" {
		return toast, nil
	}

	data, err := json.Marshal(toast)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal toast: %w", err)
	}
	keep := s.Keep
	if keep == 0 {
		keep = 50
	}
	pipe := s.Client.Pipeline()
	pipe.LPush(ctx, notifyKey(adminID), data)
	pipe.LTrim(ctx, notifyKey(adminID), 0, keep-1)
	pipe.Expire(ctx, notifyKey(adminID), 24*time.Hour)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store toast: %w", err)
	}
	return toast, nil
}

func (s *DefaultNotificationService) Recent(ctx context.Context, adminID string, limit int64) ([]models.Toast, error) {
	if limit <= 0 {
		limit = 20
	}
	raw, err := s.Client.LRange(ctx, notifyKey(adminID), 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load toasts: %w", err)
	}
	toasts := make([]models.Toast, 0, len(raw))
	for _, item := range raw {
		var t models.Toast
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			continue
		}
		toasts = append(toasts, t)
	}
	return toasts, nil
}
