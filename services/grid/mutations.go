// File: services/grid/mutations.go
package grid

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"staygrid/models"

	"go.uber.org/zap"
)

// BlockDispatcher is the mutation capability the grid session drives.
// Dates cross this boundary as noon-UTC timestamps so a calendar date
// cannot shift to a neighbouring day under any timezone offset.
type BlockDispatcher interface {
	BlockDates(ctx context.Context, roomID string, dates []time.Time, reason, createdBy string) error
	UnblockDates(ctx context.Context, roomID string, dates []time.Time) error
}

// selectionDates converts the selection's cell keys back to noon-UTC
// timestamps, verifying every key belongs to the target room.
func selectionDates(session *models.GridSession) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(session.Selection))
	for _, key := range session.Selection {
		roomID, date, err := models.SplitCellKey(key)
		if err != nil {
			return nil, NewCellError(err.Error())
		}
		if roomID != session.TargetRoomID {
			return nil, NewValidationError(fmt.Sprintf("cell %s does not belong to room %s", key, session.TargetRoomID))
		}
		dates = append(dates, date.NoonUTC())
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

// BlockSelection blocks every selected date on the target room. Requires a
// non-empty selection, a single target room and a non-empty reason. On
// success the selection is cleared and the calendar cache invalidated; on
// failure the session is left untouched so the admin can retry.
func (s *DefaultGridSessionService) BlockSelection(ctx context.Context, sessionID, reason string) (*models.GridSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Selection) == 0 {
		return nil, NewValidationError("no dates selected")
	}
	if session.TargetRoomID == "" {
		return nil, NewValidationError("no target room")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, NewValidationError("a reason is required to block dates")
	}

	dates, err := selectionDates(session)
	if err != nil {
		return nil, err
	}

	if err := s.Dispatcher.BlockDates(ctx, session.TargetRoomID, dates, reason, session.AdminID); err != nil {
		if s.Logger != nil {
			s.Logger.Error("block mutation failed",
				zap.String("sessionId", sessionID),
				zap.String("roomId", session.TargetRoomID),
				zap.Error(err),
			)
		}
		toast := s.notify(ctx, session.AdminID, models.ToastError, mutationErrorMessage(err))
		return &models.GridSessionResponse{Session: session, Toast: toast}, nil
	}

	roomTypeID := session.RoomTypeID
	session.ClearSelection()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Availability.InvalidateCalendar(ctx, roomTypeID)

	toast := s.notify(ctx, session.AdminID, models.ToastSuccess,
		fmt.Sprintf("Blocked %d date(s).", len(dates)))
	return &models.GridSessionResponse{Session: session, Toast: toast}, nil
}

// UnblockSelection removes the blocks on every selected date of the target
// room. The selection is normally seeded by clicking a blocked cell, which
// selects exactly that one cell.
func (s *DefaultGridSessionService) UnblockSelection(ctx context.Context, sessionID string) (*models.GridSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Selection) == 0 {
		return nil, NewValidationError("no dates selected")
	}
	if session.TargetRoomID == "" {
		return nil, NewValidationError("no target room")
	}

	dates, err := selectionDates(session)
	if err != nil {
		return nil, err
	}

	if err := s.Dispatcher.UnblockDates(ctx, session.TargetRoomID, dates); err != nil {
		if s.Logger != nil {
			s.Logger.Error("unblock mutation failed",
				zap.String("sessionId", sessionID),
				zap.String("roomId", session.TargetRoomID),
				zap.Error(err),
			)
		}
		toast := s.notify(ctx, session.AdminID, models.ToastError, mutationErrorMessage(err))
		return &models.GridSessionResponse{Session: session, Toast: toast}, nil
	}

	roomTypeID := session.RoomTypeID
	session.ClearSelection()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	s.Availability.InvalidateCalendar(ctx, roomTypeID)

	toast := s.notify(ctx, session.AdminID, models.ToastSuccess,
		fmt.Sprintf("Unblocked %d date(s).", len(dates)))
	return &models.GridSessionResponse{Session: session, Toast: toast}, nil
}

// mutationErrorMessage prefers the server-provided message, falling back
// to a generic one.
func mutationErrorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Something went wrong. Please try again."
	}
	return err.Error()
}
