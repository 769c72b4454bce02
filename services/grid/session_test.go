package grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"staygrid/models"

	"github.com/stretchr/testify/assert"
)

// memorySessionStore is an in-memory SessionStore for tests.
type memorySessionStore struct {
	sessions map[string]models.GridSession
}

func newMemoryStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]models.GridSession)}
}

func (s *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.GridSession, error) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := sess
	return &copied, nil
}

func (s *memorySessionStore) Save(ctx context.Context, session *models.GridSession) error {
	s.sessions[session.SessionID] = *session
	return nil
}

func (s *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(s.sessions, sessionID)
	return nil
}

// fakeAvailability serves a fixed calendar and records invalidations.
type fakeAvailability struct {
	calendar      *models.GridCalendar
	invalidations []string
}

func (f *fakeAvailability) GetCalendar(ctx context.Context, roomTypeID string, from, to models.CalendarDate) (*models.GridCalendar, error) {
	return f.calendar, nil
}

func (f *fakeAvailability) CheckAvailability(ctx context.Context, checkIn, checkOut models.CalendarDate, roomTypeID string) (*models.AvailabilityResult, error) {
	return &models.AvailabilityResult{}, nil
}

func (f *fakeAvailability) InvalidateCalendar(ctx context.Context, roomTypeID string) {
	f.invalidations = append(f.invalidations, roomTypeID)
}

// fakeDispatcher records mutations and can be told to fail.
type fakeDispatcher struct {
	err          error
	blockedRoom  string
	blockedDates []time.Time
	reason       string
	createdBy    string
	unblocked    []time.Time
}

func (f *fakeDispatcher) BlockDates(ctx context.Context, roomID string, dates []time.Time, reason, createdBy string) error {
	if f.err != nil {
		return f.err
	}
	f.blockedRoom = roomID
	f.blockedDates = dates
	f.reason = reason
	f.createdBy = createdBy
	return nil
}

func (f *fakeDispatcher) UnblockDates(ctx context.Context, roomID string, dates []time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.blockedRoom = roomID
	f.unblocked = dates
	return nil
}

func testCalendar() *models.GridCalendar {
	return &models.GridCalendar{
		From: "2025-03-01",
		To:   "2025-03-31",
		Rooms: []models.Room{
			{ID: "room-a", RoomNumber: "101"},
			{ID: "room-b", RoomNumber: "102"},
		},
		Cells: map[string]models.CellInfo{
			"room-a-2025-03-05": {Status: models.CellBooked},
			"room-a-2025-03-06": {Status: models.CellBlocked, Reason: "painting"},
		},
	}
}

func testService(disp *fakeDispatcher) (*DefaultGridSessionService, *fakeAvailability) {
	avail := &fakeAvailability{calendar: testCalendar()}
	if disp == nil {
		disp = &fakeDispatcher{}
	}
	svc := &DefaultGridSessionService{
		Store:        newMemoryStore(),
		Availability: avail,
		Dispatcher:   disp,
	}
	return svc, avail
}

func openSession(t *testing.T, svc *DefaultGridSessionService) *models.GridSession {
	t.Helper()
	from, _ := models.ParseCalendarDate("2025-03-01")
	to, _ := models.ParseCalendarDate("2025-03-31")
	session, err := svc.Open(context.Background(), "admin-1", from, to, "type-1")
	assert.NoError(t, err)
	return session
}

func TestOpenRejectsInvertedWindow(t *testing.T) {
	svc, _ := testService(nil)
	from, _ := models.ParseCalendarDate("2025-03-31")
	to, _ := models.ParseCalendarDate("2025-03-01")

	_, err := svc.Open(context.Background(), "admin-1", from, to, "")
	var ge *GridError
	assert.True(t, errors.As(err, &ge))
}

func TestGetUnknownSession(t *testing.T) {
	svc, _ := testService(nil)
	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestPointerDownOnAvailableCellAnchorsSelection(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)

	resp, err := svc.PointerDown(context.Background(), session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, models.GesturePressed, resp.Session.Phase)
	assert.Equal(t, "room-a-2025-03-10", resp.Session.Anchor)
	assert.Equal(t, "room-a", resp.Session.TargetRoomID)
	assert.Equal(t, []string{"room-a-2025-03-10"}, resp.Session.Selection)
}

func TestPointerDownOnBookedCellResetsGestureOnly(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	_, err := svc.PointerDown(context.Background(), session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)

	resp, err := svc.PointerDown(context.Background(), session.SessionID, "room-a-2025-03-05")
	assert.NoError(t, err)
	assert.Equal(t, models.GestureNone, resp.Session.Phase)
	assert.Empty(t, resp.Session.Anchor)
	// The earlier selection survives.
	assert.Equal(t, []string{"room-a-2025-03-10"}, resp.Session.Selection)
}

func TestPointerDownOffGridRoomFails(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)

	_, err := svc.PointerDown(context.Background(), session.SessionID, "room-z-2025-03-10")
	var ge *GridError
	assert.True(t, errors.As(err, &ge))
}

func TestDragExtendsSelectionWithinAnchorRoom(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	_, err := svc.PointerDown(ctx, session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)

	resp, err := svc.PointerEnter(ctx, session.SessionID, "room-a-2025-03-11")
	assert.NoError(t, err)
	assert.Equal(t, models.GestureDragged, resp.Session.Phase)

	resp, err = svc.PointerEnter(ctx, session.SessionID, "room-a-2025-03-12")
	assert.NoError(t, err)
	assert.Equal(t,
		[]string{"room-a-2025-03-10", "room-a-2025-03-11", "room-a-2025-03-12"},
		resp.Session.Selection)
}

func TestDragIgnoresOtherRoomsAndUnavailableCells(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	_, err := svc.PointerDown(ctx, session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)

	// Crossing into another room's row must not grow the selection.
	resp, err := svc.PointerEnter(ctx, session.SessionID, "room-b-2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, []string{"room-a-2025-03-10"}, resp.Session.Selection)

	// Nor does sweeping over a booked cell.
	resp, err = svc.PointerEnter(ctx, session.SessionID, "room-a-2025-03-05")
	assert.NoError(t, err)
	assert.Equal(t, []string{"room-a-2025-03-10"}, resp.Session.Selection)
}

func TestPointerEnterWithoutGestureIsNoop(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)

	resp, err := svc.PointerEnter(context.Background(), session.SessionID, "room-a-2025-03-11")
	assert.NoError(t, err)
	assert.Empty(t, resp.Session.Selection)
	assert.Equal(t, models.GestureNone, resp.Session.Phase)
}

func TestClickAfterDragDoesNotToggleAnchor(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	_, _ = svc.PointerDown(ctx, session.SessionID, "room-a-2025-03-10")
	_, _ = svc.PointerEnter(ctx, session.SessionID, "room-a-2025-03-11")
	_, _ = svc.PointerUp(ctx, session.SessionID)

	// The browser fires a click on the release cell after every drag.
	resp, err := svc.Click(ctx, session.SessionID, "room-a-2025-03-11")
	assert.NoError(t, err)
	assert.Equal(t, []string{"room-a-2025-03-10", "room-a-2025-03-11"}, resp.Session.Selection)
	assert.Equal(t, models.GestureNone, resp.Session.Phase)
}

func TestClickAfterStationaryTapKeepsSingleSelection(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	_, _ = svc.PointerDown(ctx, session.SessionID, "room-a-2025-03-10")
	_, _ = svc.PointerUp(ctx, session.SessionID)

	resp, err := svc.Click(ctx, session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, []string{"room-a-2025-03-10"}, resp.Session.Selection)
}

func TestDiscreteClickTogglesMembership(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	resp, err := svc.Click(ctx, session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, []string{"room-a-2025-03-10"}, resp.Session.Selection)

	resp, err = svc.Click(ctx, session.SessionID, "room-a-2025-03-10")
	assert.NoError(t, err)
	assert.Empty(t, resp.Session.Selection)
	assert.Empty(t, resp.Session.TargetRoomID)
}

func TestClickOnBookedCellReturnsErrorToast(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)

	resp, err := svc.Click(context.Background(), session.SessionID, "room-a-2025-03-05")
	assert.NoError(t, err)
	assert.NotNil(t, resp.Toast)
	assert.Equal(t, models.ToastError, resp.Toast.Level)
	assert.Empty(t, resp.Session.Selection)
}

func TestClickOnBlockedCellOpensReasonView(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)

	resp, err := svc.Click(context.Background(), session.SessionID, "room-a-2025-03-06")
	assert.NoError(t, err)
	assert.NotNil(t, resp.Reason)
	assert.Equal(t, "painting", resp.Reason.Reason)
	assert.Equal(t, "2025-03-06", resp.Reason.Date)
	// The blocked cell becomes the sole selection so unblock can target it.
	assert.Equal(t, []string{"room-a-2025-03-06"}, resp.Session.Selection)
}

func TestClickOnOtherRoomStartsFreshSelection(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	_, _ = svc.Click(ctx, session.SessionID, "room-a-2025-03-10")
	resp, err := svc.Click(ctx, session.SessionID, "room-b-2025-03-10")
	assert.NoError(t, err)
	assert.Equal(t, "room-b", resp.Session.TargetRoomID)
	assert.Equal(t, []string{"room-b-2025-03-10"}, resp.Session.Selection)
}

func TestNavigateClearsSelection(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	_, _ = svc.Click(ctx, session.SessionID, "room-a-2025-03-10")

	from, _ := models.ParseCalendarDate("2025-04-01")
	to, _ := models.ParseCalendarDate("2025-04-30")
	got, err := svc.Navigate(ctx, session.SessionID, from, to, "type-1")
	assert.NoError(t, err)
	assert.Empty(t, got.Selection)
	assert.Empty(t, got.TargetRoomID)
	assert.Equal(t, "2025-04-01", got.From)
}

func TestCloseDeletesSession(t *testing.T) {
	svc, _ := testService(nil)
	session := openSession(t, svc)
	ctx := context.Background()

	assert.NoError(t, svc.Close(ctx, session.SessionID))
	_, err := svc.Get(ctx, session.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
