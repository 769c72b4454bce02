package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"staygrid/models"

	"github.com/stretchr/testify/assert"
)

func selectRange(t *testing.T, svc *DefaultGridSessionService, sessionID string) {
	t.Helper()
	ctx := context.Background()
	_, err := svc.PointerDown(ctx, sessionID, "room-a-2025-03-10")
	assert.NoError(t, err)
	_, err = svc.PointerEnter(ctx, sessionID, "room-a-2025-03-11")
	assert.NoError(t, err)
	_, err = svc.PointerEnter(ctx, sessionID, "room-a-2025-03-12")
	assert.NoError(t, err)
}

func TestBlockSelectionDispatchesNoonUTCDates(t *testing.T) {
	disp := &fakeDispatcher{}
	svc, avail := testService(disp)
	session := openSession(t, svc)
	selectRange(t, svc, session.SessionID)

	resp, err := svc.BlockSelection(context.Background(), session.SessionID, "deep clean")
	assert.NoError(t, err)

	assert.Equal(t, "room-a", disp.blockedRoom)
	assert.Equal(t, "deep clean", disp.reason)
	assert.Equal(t, "admin-1", disp.createdBy)
	assert.Len(t, disp.blockedDates, 3)
	for i, want := range []string{"2025-03-10", "2025-03-11", "2025-03-12"} {
		got := disp.blockedDates[i]
		assert.Equal(t, want, models.DateOf(got).String())
		assert.Equal(t, 12, got.Hour())
		assert.Equal(t, time.UTC, got.Location())
	}

	// Success clears the selection and drops the cached calendar.
	assert.Empty(t, resp.Session.Selection)
	assert.Empty(t, resp.Session.TargetRoomID)
	assert.Equal(t, []string{"type-1"}, avail.invalidations)
	assert.NotNil(t, resp.Toast)
	assert.Equal(t, models.ToastSuccess, resp.Toast.Level)
}

func TestBlockSelectionRequiresReason(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	selectRange(t, svc, session.SessionID)

	_, err := svc.BlockSelection(context.Background(), session.SessionID, "   ")
	var ge *GridError
	assert.True(t, errors.As(err, &ge))
}

func TestBlockSelectionRequiresSelection(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)

	_, err := svc.BlockSelection(context.Background(), session.SessionID, "deep clean")
	var ge *GridError
	assert.True(t, errors.As(err, &ge))
}

func TestBlockSelectionFailureKeepsSelection(t *testing.T) {
	disp := &fakeDispatcher{err: errors.New("room is no longer available")}
	svc, avail := testService(disp)
	session := openSession(t, svc)
	selectRange(t, svc, session.SessionID)

	resp, err := svc.BlockSelection(context.Background(), session.SessionID, "deep clean")
	assert.NoError(t, err)

	// The toast carries the server's message and the admin can retry with
	// the selection intact.
	assert.NotNil(t, resp.Toast)
	assert.Equal(t, models.ToastError, resp.Toast.Level)
	assert.Equal(t, "room is no longer available", resp.Toast.Message)
	assert.Len(t, resp.Session.Selection, 3)
	assert.Empty(t, avail.invalidations)

	stored, err := svc.Get(context.Background(), session.SessionID)
	assert.NoError(t, err)
	assert.Len(t, stored.Selection, 3)
}

func TestUnblockSelectionDispatchesAndClears(t *testing.T) {
	disp := &fakeDispatcher{}
	svc, avail := testService(disp)
	session := openSession(t, svc)
	ctx := context.Background()

	// Clicking the blocked cell seeds the single-cell selection.
	_, err := svc.Click(ctx, session.SessionID, "room-a-2025-03-06")
	assert.NoError(t, err)

	resp, err := svc.UnblockSelection(ctx, session.SessionID)
	assert.NoError(t, err)

	assert.Equal(t, "room-a", disp.blockedRoom)
	assert.Len(t, disp.unblocked, 1)
	assert.Equal(t, "2025-03-06", models.DateOf(disp.unblocked[0]).String())
	assert.Empty(t, resp.Session.Selection)
	assert.Equal(t, []string{"type-1"}, avail.invalidations)
}

func TestUnblockSelectionFailureKeepsSelection(t *testing.T) {
	disp := &fakeDispatcher{err: errors.New("")}
	svc, _ := testService(disp)
	session := openSession(t, svc)
	ctx := context.Background()

	_, err := svc.Click(ctx, session.SessionID, "room-a-2025-03-06")
	assert.NoError(t, err)

	resp, err := svc.UnblockSelection(ctx, session.SessionID)
	assert.NoError(t, err)
	assert.Equal(t, "Something went wrong. Please try again.", resp.Toast.Message)
	assert.Equal(t, []string{"room-a-2025-03-06"}, resp.Session.Selection)
}

func TestRepoBlockDispatcherReducesTimestampsToDates(t *testing.T) {
	writer := &captureBlockedWriter{}
	d := &RepoBlockDispatcher{Blocked: writer}
	ctx := context.Background()

	noon := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	err := d.BlockDates(ctx, "room-a", []time.Time{noon, noon.AddDate(0, 0, 1)}, "deep clean", "admin-1")
	assert.NoError(t, err)
	assert.Len(t, writer.created, 2)
	assert.Equal(t, "2025-03-10", writer.created[0].Date)
	assert.Equal(t, "2025-03-11", writer.created[1].Date)
	assert.Equal(t, "deep clean", writer.created[0].Reason)
	assert.Equal(t, "admin-1", writer.created[0].CreatedBy)

	err = d.UnblockDates(ctx, "room-a", []time.Time{noon})
	assert.NoError(t, err)
	assert.Equal(t, []string{"2025-03-10"}, writer.deleted)
}

type captureBlockedWriter struct {
	created []models.BlockedDate
	deleted []string
}

func (w *captureBlockedWriter) CreateMany(ctx context.Context, blocks []models.BlockedDate) error {
	w.created = append(w.created, blocks...)
	return nil
}

func (w *captureBlockedWriter) DeleteByRoomAndDates(ctx context.Context, roomID string, dates []string) (int64, error) {
	w.deleted = append(w.deleted, dates...)
	return int64(len(dates)), nil
}
