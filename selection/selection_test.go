package selection

import (
	"errors"
	"testing"
	"time"
)

type memStore struct {
	notes map[string]string
	saves int
	err   error
}

func newMemStore() *memStore { return &memStore{notes: make(map[string]string)} }

func (s *memStore) Lookup(key string) (string, bool) {
	v, ok := s.notes[key]
	return v, ok
}

func (s *memStore) Save(key, content string) error {
	s.saves++
	if s.err != nil {
		return s.err
	}
	s.notes[key] = content
	return nil
}

var at = time.Date(2026, 7, 4, 13, 42, 10, 0, time.Local)

func TestFirstMoveSelectsZero(t *testing.T) {
	for _, move := range []func(*Controller){(*Controller).Right, (*Controller).Left, (*Controller).Up, (*Controller).Down} {
		c := NewController(newMemStore())
		if _, ok := c.State().Minute(); ok {
			t.Fatal("expected no selection initially")
		}
		move(c)
		if m, ok := c.State().Minute(); !ok || m != 0 {
			t.Fatalf("first move selected %d (ok=%v), want 0", m, ok)
		}
	}
}

func TestMovesWrap(t *testing.T) {
	cases := []struct {
		name  string
		start int
		delta int
		want  int
	}{
		{"right from 59", 59, 1, 0},
		{"left from 0", 0, -1, 59},
		{"up from 57", 57, 5, 2},
		{"down from 3", 3, -5, 58},
		{"down from 5", 5, -5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := State{mode: Selected, minute: tc.start}.Move(tc.delta)
			if m, _ := s.Minute(); m != tc.want {
				t.Fatalf("minute = %d, want %d", m, tc.want)
			}
		})
	}
}

func TestMovesAreReversible(t *testing.T) {
	for m := 0; m < MinutesPerHour; m++ {
		s := State{mode: Selected, minute: m}
		if got, _ := s.Move(1).Move(-1).Minute(); got != m {
			t.Fatalf("right/left from %d returned %d", m, got)
		}
		if got, _ := s.Move(5).Move(-5).Minute(); got != m {
			t.Fatalf("up/down from %d returned %d", m, got)
		}
	}
}

func TestSelectionStaysInRange(t *testing.T) {
	c := NewController(newMemStore())
	moves := []func(){c.Right, c.Up, c.Up, c.Left, c.Down, c.Down, c.Down, c.Left, c.Left}
	for i := 0; i < 500; i++ {
		moves[(i*7)%len(moves)]()
		m, ok := c.State().Minute()
		if !ok || m < 0 || m >= MinutesPerHour {
			t.Fatalf("minute %d out of range after %d moves", m, i)
		}
	}
}

func TestRightFrom59DerivesKeyFromVirtualTime(t *testing.T) {
	c := NewController(newMemStore())
	c.state = State{mode: Selected, minute: 59}
	c.Right()
	m, _ := c.State().Minute()
	if m != 0 {
		t.Fatalf("minute = %d, want 0", m)
	}
	if _, ok := c.Confirm(at); !ok {
		t.Fatal("Confirm did not open a session")
	}
	s, _ := c.Session()
	if s.Key != "2026-07-04-13-00" {
		t.Fatalf("key = %q", s.Key)
	}
}

func TestConfirmRequiresSelection(t *testing.T) {
	c := NewController(newMemStore())
	if _, ok := c.Confirm(at); ok {
		t.Fatal("Confirm without selection must be a no-op")
	}
	if c.Editing() {
		t.Fatal("must not be editing")
	}
	if c.Cancel("x") {
		t.Fatal("Cancel outside editing must be a no-op")
	}
}

func TestEditRoundTrip(t *testing.T) {
	store := newMemStore()
	store.notes[Key(at, 7)] = "existing"
	c := NewController(store)
	c.Right()
	for i := 0; i < 7; i++ {
		c.Right()
	}
	if m, _ := c.State().Minute(); m != 7 {
		t.Fatalf("minute = %d, want 7", m)
	}

	content, ok := c.Confirm(at)
	if !ok || content != "existing" {
		t.Fatalf("Confirm = %q, %v", content, ok)
	}
	if c.State().Mode() != Editing {
		t.Fatalf("mode = %v, want editing", c.State().Mode())
	}

	// Moves are ignored while editing.
	c.Right()
	if m, _ := c.State().Minute(); m != 7 {
		t.Fatalf("minute moved while editing: %d", m)
	}

	if !c.Cancel("updated") {
		t.Fatal("Cancel failed")
	}
	if store.notes[Key(at, 7)] != "updated" {
		t.Fatalf("stored = %q", store.notes[Key(at, 7)])
	}
	if c.State().Mode() != Selected {
		t.Fatalf("mode = %v, want selected", c.State().Mode())
	}
}

func TestCancelSavesUnconditionally(t *testing.T) {
	store := newMemStore()
	c := NewController(store)
	c.Right()
	if content, _ := c.Confirm(at); content != "" {
		t.Fatalf("new note content = %q, want empty", content)
	}
	c.Cancel("")
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
	if v, ok := store.notes[Key(at, 0)]; !ok || v != "" {
		t.Fatalf("empty note not stored: %q %v", v, ok)
	}
}

func TestKeyBindsToVirtualHourAtConfirm(t *testing.T) {
	store := newMemStore()
	c := NewController(store)
	c.Right()
	c.Confirm(at)
	c.Cancel("first")

	// Virtual time has raced into the next hour: the same minute now addresses a
	// different note and the earlier one is out of reach from the face.
	content, _ := c.Confirm(at.Add(time.Hour))
	if content != "" {
		t.Fatalf("next hour returned %q, want a fresh note", content)
	}
	c.Cancel("second")

	if store.notes["2026-07-04-13-00"] != "first" || store.notes["2026-07-04-14-00"] != "second" {
		t.Fatalf("notes = %v", store.notes)
	}
}

func TestSaveFailureDoesNotPropagate(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk full")
	c := NewController(store)
	c.Right()
	c.Confirm(at)

	if !c.Cancel("lost") {
		t.Fatal("Cancel must succeed even when the store fails")
	}
	if c.State().Mode() != Selected {
		t.Fatalf("mode = %v, want selected", c.State().Mode())
	}
	if _, ok := c.Session(); ok {
		t.Fatal("session must be closed")
	}
}

func TestKeyFormat(t *testing.T) {
	ts := time.Date(2026, 1, 9, 4, 0, 0, 0, time.Local)
	if got := Key(ts, 5); got != "2026-01-09-04-05" {
		t.Fatalf("Key = %q", got)
	}
}
