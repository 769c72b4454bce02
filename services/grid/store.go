// File: services/grid/store.go
package grid

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"staygrid/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a grid session is missing or expired.
var ErrSessionNotFound = errors.New("grid session not found or expired")

// SessionStore persists grid selection sessions between gesture requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.GridSession, error)
	Save(ctx context.Context, session *models.GridSession) error
	Delete(ctx context.Context, sessionID string) error
}

// redisSessionStore keeps sessions as JSON blobs with a sliding TTL.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore constructs a Redis-backed SessionStore.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	return &redisSessionStore{client: client, ttl: ttl}
}

func sessionKey(id string) string { return "gridsession:" + id }

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.GridSession, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load grid session: %w", err)
	}
	var session models.GridSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to parse grid session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.GridSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal grid session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store grid session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}
