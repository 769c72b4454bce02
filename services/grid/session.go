// File: services/grid/session.go
package grid

import (
	"context"
	"fmt"

	"staygrid/models"
	"staygrid/services/availability"
	"staygrid/services/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GridSessionService manages one admin's selection session on the
// availability grid. A gesture arrives as separate pointer-down /
// pointer-enter / pointer-up / click requests; the session carries the
// gesture phase between them so the click can tell a stationary tap from a
// drag release without depending on event timing.
type GridSessionService interface {
	Open(ctx context.Context, adminID string, from, to models.CalendarDate, roomTypeID string) (*models.GridSession, error)
	Get(ctx context.Context, sessionID string) (*models.GridSession, error)
	Navigate(ctx context.Context, sessionID string, from, to models.CalendarDate, roomTypeID string) (*models.GridSession, error)
	PointerDown(ctx context.Context, sessionID, cellKey string) (*models.GridSessionResponse, error)
	PointerEnter(ctx context.Context, sessionID, cellKey string) (*models.GridSessionResponse, error)
	PointerUp(ctx context.Context, sessionID string) (*models.GridSessionResponse, error)
	Click(ctx context.Context, sessionID, cellKey string) (*models.GridSessionResponse, error)
	BlockSelection(ctx context.Context, sessionID, reason string) (*models.GridSessionResponse, error)
	UnblockSelection(ctx context.Context, sessionID string) (*models.GridSessionResponse, error)
	Close(ctx context.Context, sessionID string) error
}

// DefaultGridSessionService implements GridSessionService on top of a
// session store, the availability resolver and the block dispatcher.
type DefaultGridSessionService struct {
	Store        SessionStore
	Availability availability.AvailabilityService
	Dispatcher   BlockDispatcher
	Notifier     notification.NotificationService
	Logger       *zap.Logger
}

func (s *DefaultGridSessionService) Open(ctx context.Context, adminID string, from, to models.CalendarDate, roomTypeID string) (*models.GridSession, error) {
	if to.Before(from) {
		return nil, NewValidationError(fmt.Sprintf("window end %s precedes start %s", to, from))
	}
	session := &models.GridSession{
		SessionID:  uuid.New().String(),
		AdminID:    adminID,
		From:       from.String(),
		To:         to.String(),
		RoomTypeID: roomTypeID,
		Phase:      models.GestureNone,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultGridSessionService) Get(ctx context.Context, sessionID string) (*models.GridSession, error) {
	return s.Store.Get(ctx, sessionID)
}

// Navigate moves the session to a new month window or room type filter.
// A selection anchored to a room in one month is meaningless in another,
// so navigation unconditionally clears it.
func (s *DefaultGridSessionService) Navigate(ctx context.Context, sessionID string, from, to models.CalendarDate, roomTypeID string) (*models.GridSession, error) {
	if to.Before(from) {
		return nil, NewValidationError(fmt.Sprintf("window end %s precedes start %s", to, from))
	}
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	session.From = from.String()
	session.To = to.String()
	session.RoomTypeID = roomTypeID
	session.ClearSelection()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *DefaultGridSessionService) Close(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// calendar resolves the session's current window.
func (s *DefaultGridSessionService) calendar(ctx context.Context, session *models.GridSession) (*models.GridCalendar, error) {
	from, err := models.ParseCalendarDate(session.From)
	if err != nil {
		return nil, err
	}
	to, err := models.ParseCalendarDate(session.To)
	if err != nil {
		return nil, err
	}
	return s.Availability.GetCalendar(ctx, session.RoomTypeID, from, to)
}

// resolveCell validates the cell key against the session's calendar and
// returns the room id plus the resolved status.
func (s *DefaultGridSessionService) resolveCell(ctx context.Context, session *models.GridSession, cellKey string) (string, models.CellInfo, error) {
	roomID, _, err := models.SplitCellKey(cellKey)
	if err != nil {
		return "", models.CellInfo{}, NewCellError(err.Error())
	}
	cal, err := s.calendar(ctx, session)
	if err != nil {
		return "", models.CellInfo{}, err
	}
	known := false
	for _, room := range cal.Rooms {
		if room.ID == roomID {
			known = true
			break
		}
	}
	if !known {
		return "", models.CellInfo{}, NewCellError(fmt.Sprintf("room %s is not on the current grid", roomID))
	}
	return roomID, availability.ResolveCell(cal.Cells, cellKey), nil
}

// PointerDown starts a gesture. Only an available cell can anchor a drag;
// pressing a booked or blocked cell resets any stale gesture phase but
// leaves the selection untouched.
func (s *DefaultGridSessionService) PointerDown(ctx context.Context, sessionID, cellKey string) (*models.GridSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	roomID, info, err := s.resolveCell(ctx, session, cellKey)
	if err != nil {
		return nil, err
	}

	if info.Status != models.CellAvailable {
		session.Phase = models.GestureNone
		session.Anchor = ""
	} else {
		session.Phase = models.GesturePressed
		session.Anchor = cellKey
		session.TargetRoomID = roomID
		session.Selection = []string{cellKey}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &models.GridSessionResponse{Session: session}, nil
}

// PointerEnter extends an in-flight drag. Only available cells of the
// anchor's room join the selection; cells of other rooms are silently
// ignored while the drag keeps tracking.
func (s *DefaultGridSessionService) PointerEnter(ctx context.Context, sessionID, cellKey string) (*models.GridSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.GesturePressed && session.Phase != models.GestureDragged {
		return &models.GridSessionResponse{Session: session}, nil
	}
	roomID, info, err := s.resolveCell(ctx, session, cellKey)
	if err != nil {
		return nil, err
	}
	if roomID != session.TargetRoomID || info.Status != models.CellAvailable {
		return &models.GridSessionResponse{Session: session}, nil
	}

	session.AddSelected(cellKey)
	session.Phase = models.GestureDragged

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &models.GridSessionResponse{Session: session}, nil
}

// PointerUp ends the physical gesture. The phase and anchor deliberately
// survive it: the click request that follows consumes them to decide
// between tap and drag, then resets them itself.
func (s *DefaultGridSessionService) PointerUp(ctx context.Context, sessionID string) (*models.GridSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.GridSessionResponse{Session: session}, nil
}

// Click applies the tap decision table. It reads the gesture phase and
// anchor left by the preceding pointer events, decides, and resets both.
func (s *DefaultGridSessionService) Click(ctx context.Context, sessionID, cellKey string) (*models.GridSessionResponse, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	roomID, info, err := s.resolveCell(ctx, session, cellKey)
	if err != nil {
		return nil, err
	}

	phase := session.Phase
	anchor := session.Anchor
	session.Phase = models.GestureNone
	session.Anchor = ""

	resp := &models.GridSessionResponse{Session: session}

	switch {
	case phase == models.GestureDragged:
		// A drag release also fires a click on the last cell; acting on it
		// would toggle the anchor off. Suppress it.

	case info.Status == models.CellBooked:
		resp.Toast = s.notify(ctx, session.AdminID, models.ToastError,
			"This date is booked and cannot be modified.")

	case info.Status == models.CellBlocked:
		// Open the read-only reason view for exactly this cell, replacing
		// any existing selection.
		session.Selection = []string{cellKey}
		session.TargetRoomID = roomID
		_, date, _ := models.SplitCellKey(cellKey)
		reason := info.Reason
		if reason == "" {
			reason = "No reason recorded"
		}
		resp.Reason = &models.BlockedReason{
			CellKey: cellKey,
			RoomID:  roomID,
			Date:    date.String(),
			Reason:  reason,
		}

	case phase == models.GesturePressed && cellKey == anchor:
		// Stationary tap: pointer-down already selected exactly this cell.
		// Toggling here would deselect it again.

	default:
		// Discrete click outside a gesture: toggle membership. The
		// selection stays single-room, so a click on another room's cell
		// starts a fresh selection there.
		if roomID != session.TargetRoomID && len(session.Selection) > 0 {
			session.Selection = nil
		}
		session.TargetRoomID = roomID
		session.ToggleSelected(cellKey)
		if len(session.Selection) == 0 {
			session.TargetRoomID = ""
		}
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return resp, nil
}

// notify pushes a toast, logging instead of failing the gesture when the
// notification store is unavailable.
func (s *DefaultGridSessionService) notify(ctx context.Context, adminID, level, message string) *models.Toast {
	if s.Notifier == nil {
		return &models.Toast{Level: level, Message: message}
	}
	toast, err := s.Notifier.Push(ctx, adminID, level, message)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Warn("failed to push toast", zap.Error(err))
		}
		return &models.Toast{Level: level, Message: message}
	}
	return toast
}
