package cli

import (
	"log"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type clockUILogMsg struct {
	level string
	text  string
}

// clockUILogForwarder turns standard log output into messages for the clock UI so
// nothing is written over the alternate screen.
type clockUILogForwarder struct {
	send    func(tea.Msg)
	mu      sync.Mutex
	pending string
}

func (w *clockUILogForwarder) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending += string(p)
	for {
		newline := strings.IndexByte(w.pending, '\n')
		if newline < 0 {
			break
		}
		line := strings.TrimSpace(w.pending[:newline])
		w.pending = w.pending[newline+1:]
		w.emitLine(line)
	}
	return len(p), nil
}

func (w *clockUILogForwarder) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	line := strings.TrimSpace(w.pending)
	w.pending = ""
	w.emitLine(line)
}

func (w *clockUILogForwarder) emitLine(line string) {
	if line == "" {
		return
	}
	w.send(clockUILogMsg{level: clockUILogLevel(line), text: line})
}

func clockUILogLevel(line string) string {
	lower := strings.ToLower(line)
	if strings.Contains(lower, "error") || strings.Contains(lower, "failed") || strings.Contains(lower, "not saved") {
		return "error"
	}
	if strings.Contains(lower, "warn") {
		return "warn"
	}
	return "info"
}

// captureClockUILogs redirects the standard logger into send until the returned
// function is called.
func captureClockUILogs(send func(tea.Msg)) func() {
	oldWriter := log.Writer()
	oldFlags := log.Flags()
	oldPrefix := log.Prefix()

	forwarder := &clockUILogForwarder{send: send}
	log.SetFlags(0)
	log.SetPrefix("")
	log.SetOutput(forwarder)

	return func() {
		forwarder.flush()
		log.SetOutput(oldWriter)
		log.SetFlags(oldFlags)
		log.SetPrefix(oldPrefix)
	}
}
