// File: services/grid/dispatcher.go
package grid

import (
	"context"
	"fmt"
	"time"

	"staygrid/models"
)

// BlockedWriter is the slice of the blocked-date repository the dispatcher
// writes through.
type BlockedWriter interface {
	CreateMany(ctx context.Context, blocks []models.BlockedDate) error
	DeleteByRoomAndDates(ctx context.Context, roomID string, dates []string) (int64, error)
}

// RepoBlockDispatcher persists block mutations through the blocked-date
// repository. Incoming timestamps are reduced back to pure calendar dates
// at this boundary.
type RepoBlockDispatcher struct {
	Blocked BlockedWriter
}

func (d *RepoBlockDispatcher) BlockDates(ctx context.Context, roomID string, dates []time.Time, reason, createdBy string) error {
	if len(dates) == 0 {
		return fmt.Errorf("no dates to block")
	}
	blocks := make([]models.BlockedDate, len(dates))
	for i, t := range dates {
		blocks[i] = models.BlockedDate{
			RoomID:    roomID,
			Date:      models.DateOf(t.UTC()).String(),
			Reason:    reason,
			CreatedBy: createdBy,
		}
	}
	return d.Blocked.CreateMany(ctx, blocks)
}

func (d *RepoBlockDispatcher) UnblockDates(ctx context.Context, roomID string, dates []time.Time) error {
	if len(dates) == 0 {
		return fmt.Errorf("no dates to unblock")
	}
	days := make([]string, len(dates))
	for i, t := range dates {
		days[i] = models.DateOf(t.UTC()).String()
	}
	_, err := d.Blocked.DeleteByRoomAndDates(ctx, roomID, days)
	return err
}
