// Package selection tracks which minute of the face is highlighted or being edited
// and derives the note key for it.
package selection

import (
	"fmt"
	"log"
	"time"
)

// MinutesPerHour is the number of selectable slots on the face.
const MinutesPerHour = 60

// Mode is the tag of a selection State.
type Mode int

const (
	NoSelection Mode = iota
	Selected
	Editing
)

func (m Mode) String() string {
	switch m {
	case NoSelection:
		return "none"
	case Selected:
		return "selected"
	case Editing:
		return "editing"
	default:
		return "unknown"
	}
}

// State is NoSelection, Selected(minute) or Editing(minute). The minute is only
// meaningful when the mode is not NoSelection.
type State struct {
	mode   Mode
	minute int
}

// Mode returns the state tag.
func (s State) Mode() Mode { return s.mode }

// Minute returns the selected minute, if any.
func (s State) Minute() (int, bool) {
	if s.mode == NoSelection {
		return 0, false
	}
	return s.minute, true
}

// Highlight returns the minute to highlight on the face, or -1.
func (s State) Highlight() int {
	if m, ok := s.Minute(); ok {
		return m
	}
	return -1
}

// Move shifts the selection by delta minutes, wrapping around the dial. From
// NoSelection the selection starts at minute 0. Editing states do not move.
func (s State) Move(delta int) State {
	switch s.mode {
	case Editing:
		return s
	case NoSelection:
		return State{mode: Selected, minute: 0}
	}
	return State{mode: Selected, minute: wrap(s.minute + delta)}
}

func wrap(m int) int {
	m %= MinutesPerHour
	if m < 0 {
		m += MinutesPerHour
	}
	return m
}

// Key derives the note key for a minute within the virtual hour of t, formatted
// as YYYY-MM-DD-HH-MM.
//
// Keys bind to the virtual date and hour rather than to a monotonic counter. At high
// dilation the virtual hour can move on while a minute is selected, so a key derived
// earlier may not be reachable again from the face. That is intended.
func Key(t time.Time, minute int) string {
	return fmt.Sprintf("%s-%02d-%02d", t.Format("2006-01-02"), t.Hour(), wrap(minute))
}

// NoteStore is the external note collaborator.
type NoteStore interface {
	Lookup(key string) (string, bool)
	Save(key, content string) error
}

// Session is the transient record of an open edit. The key is captured when the
// editor opens and reused when it closes.
type Session struct {
	Minute int
	Key    string
}

// Controller drives State transitions and talks to the note store at the edit
// boundaries only.
type Controller struct {
	state   State
	session *Session
	store   NoteStore
}

// NewController creates a controller with nothing selected.
func NewController(store NoteStore) *Controller {
	return &Controller{store: store}
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Session returns the open edit session, if editing.
func (c *Controller) Session() (Session, bool) {
	if c.session == nil {
		return Session{}, false
	}
	return *c.session, true
}

// Editing reports whether an edit session is open.
func (c *Controller) Editing() bool { return c.state.mode == Editing }

func (c *Controller) Right() { c.state = c.state.Move(1) }
func (c *Controller) Left()  { c.state = c.state.Move(-1) }
func (c *Controller) Up()    { c.state = c.state.Move(5) }
func (c *Controller) Down()  { c.state = c.state.Move(-5) }

// Confirm opens an edit session for the selected minute, keyed at virtual time now.
// It returns the stored content (or "") and whether a session was opened; it is a
// no-op unless a minute is selected.
func (c *Controller) Confirm(now time.Time) (string, bool) {
	if c.state.mode != Selected {
		return "", false
	}
	m := c.state.minute
	c.session = &Session{Minute: m, Key: Key(now, m)}
	c.state = State{mode: Editing, minute: m}

	content, ok := c.store.Lookup(c.session.Key)
	if !ok {
		return "", true
	}
	return content, true
}

// Cancel closes the edit session, saving content under the key captured at Confirm.
// The save is unconditional and best effort: a failing store is logged, never
// reported, and the selection returns to Selected either way.
func (c *Controller) Cancel(content string) bool {
	if c.state.mode != Editing || c.session == nil {
		return false
	}
	if err := c.store.Save(c.session.Key, content); err != nil {
		log.Printf("note %s not saved: %v", c.session.Key, err)
	}
	c.state = State{mode: Selected, minute: c.session.Minute}
	c.session = nil
	return true
}
