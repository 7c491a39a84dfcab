package cli

import (
	"log"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClockUILogForwarderSplitsLines(t *testing.T) {
	var got []clockUILogMsg
	w := &clockUILogForwarder{send: func(msg tea.Msg) {
		got = append(got, msg.(clockUILogMsg))
	}}

	w.Write([]byte("notes watcher: "))
	w.Write([]byte("queue overflow\nnote k not saved: disk full\ntrailing"))
	if len(got) != 2 {
		t.Fatalf("emitted %d lines before flush, want 2", len(got))
	}
	w.flush()

	want := []clockUILogMsg{
		{level: "info", text: "notes watcher: queue overflow"},
		{level: "error", text: "note k not saved: disk full"},
		{level: "info", text: "trailing"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCaptureClockUILogsRestoresLogger(t *testing.T) {
	before := log.Writer()

	var got []tea.Msg
	restore := captureClockUILogs(func(msg tea.Msg) { got = append(got, msg) })
	log.Printf("Warning: failed to decode notes")
	restore()

	if log.Writer() != before {
		t.Fatal("log output not restored")
	}
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	msg := got[0].(clockUILogMsg)
	if msg.level != "error" || msg.text != "Warning: failed to decode notes" {
		t.Fatalf("msg = %+v", msg)
	}
}
