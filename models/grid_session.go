package models

// GesturePhase tracks where a pointer gesture stands between its events.
// A pointer press, any drag moves, the release and the final click arrive
// as separate requests; the phase is what lets the click decide whether it
// follows a stationary tap or a drag, instead of relying on event timing.
type GesturePhase string

const (
	GestureNone    GesturePhase = "none"
	GesturePressed GesturePhase = "pressed"
	GestureDragged GesturePhase = "dragged"
)

// GridSession is one admin's in-flight selection on the availability grid.
// It lives only for the duration of an interaction window: cleared on
// navigation, month change, or a successful mutation.
type GridSession struct {
	SessionID  string `json:"sessionId"`
	AdminID    string `json:"adminId,omitempty"`
	From       string `json:"from"` // YYYY-MM-DD, inclusive
	To         string `json:"to"`   // YYYY-MM-DD, inclusive
	RoomTypeID string `json:"roomTypeId,omitempty"`

	Phase        GesturePhase `json:"phase"`
	Anchor       string       `json:"anchor,omitempty"`       // cell key where the press began
	TargetRoomID string       `json:"targetRoomId,omitempty"` // selection is always single-room
	Selection    []string     `json:"selection,omitempty"`    // ordered set of cell keys
}

// HasSelected reports whether the cell key is in the selection.
func (s *GridSession) HasSelected(key string) bool {
	for _, k := range s.Selection {
		if k == key {
			return true
		}
	}
	return false
}

// AddSelected appends the cell key if not already present.
func (s *GridSession) AddSelected(key string) {
	if !s.HasSelected(key) {
		s.Selection = append(s.Selection, key)
	}
}

// ToggleSelected flips membership of the cell key.
func (s *GridSession) ToggleSelected(key string) {
	for i, k := range s.Selection {
		if k == key {
			s.Selection = append(s.Selection[:i], s.Selection[i+1:]...)
			return
		}
	}
	s.Selection = append(s.Selection, key)
}

// ClearSelection drops the selection and every gesture remnant.
func (s *GridSession) ClearSelection() {
	s.Selection = nil
	s.TargetRoomID = ""
	s.Anchor = ""
	s.Phase = GestureNone
}

// GridSessionResponse is what gesture and mutation endpoints return: the
// session state plus an optional transient toast for the admin UI.
type GridSessionResponse struct {
	Session *GridSession   `json:"session"`
	Toast   *Toast         `json:"toast,omitempty"`
	Reason  *BlockedReason `json:"reason,omitempty"`
}

// BlockedReason is the read-only reason view opened by clicking a blocked
// cell.
type BlockedReason struct {
	CellKey string `json:"cellKey"`
	RoomID  string `json:"roomId"`
	Date    string `json:"date"`
	Reason  string `json:"reason"`
}
