// File: services/room/room.go
package room

import (
	"context"

	roomRepo "staygrid/database/repository/room"
	"staygrid/models"
)

// RoomService exposes read access to rooms and room types plus the admin
// create operations.
type RoomService interface {
	GetRoomTypes(ctx context.Context) ([]models.RoomType, error)
	GetRooms(ctx context.Context, roomTypeID string) ([]models.Room, error)
	CreateRoomType(ctx context.Context, rt *models.RoomType) error
	CreateRoom(ctx context.Context, r *models.Room) error
	DeactivateRoom(ctx context.Context, id string) error
}

// DefaultRoomService implements RoomService.
type DefaultRoomService struct {
	Repo roomRepo.RoomRepository
}

func (s *DefaultRoomService) GetRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return s.Repo.GetActiveRoomTypes(ctx)
}

func (s *DefaultRoomService) GetRooms(ctx context.Context, roomTypeID string) ([]models.Room, error) {
	return s.Repo.GetActiveRooms(ctx, roomTypeID)
}

func (s *DefaultRoomService) CreateRoomType(ctx context.Context, rt *models.RoomType) error {
	rt.IsActive = true
	return s.Repo.CreateRoomType(ctx, rt)
}

func (s *DefaultRoomService) CreateRoom(ctx context.Context, r *models.Room) error {
	r.IsActive = true
	return s.Repo.CreateRoom(ctx, r)
}

func (s *DefaultRoomService) DeactivateRoom(ctx context.Context, id string) error {
	return s.Repo.SetRoomActive(ctx, id, false)
}
