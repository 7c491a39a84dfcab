package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/yoanbernabeu/chronos/notes"
)

// notesBrowserLimit bounds how many of the most recent notes are listed.
const notesBrowserLimit = 300

// notesBrowserModel lists stored notes in a scrollable viewport.
type notesBrowserModel struct {
	viewport viewport.Model
	entries  []notes.Entry
	width    int
	height   int
	theme    tuiTheme
}

func newNotesBrowserModel(theme tuiTheme) notesBrowserModel {
	vp := viewport.New(0, 0)
	vp.YPosition = 0

	return notesBrowserModel{
		viewport: vp,
		theme:    theme,
	}
}

func (m notesBrowserModel) Update(msg tea.Msg) (notesBrowserModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *notesBrowserModel) setSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.updateContent()
}

// setEntries replaces the listing; the newest notes are kept when over the limit.
func (m *notesBrowserModel) setEntries(entries []notes.Entry) {
	if len(entries) > notesBrowserLimit {
		entries = entries[len(entries)-notesBrowserLimit:]
	}
	m.entries = entries
	m.updateContent()
}

func (m *notesBrowserModel) updateContent() {
	m.viewport.SetContent(m.renderContent())
	m.viewport.GotoBottom()
}

func (m notesBrowserModel) renderContent() string {
	if len(m.entries) == 0 {
		return renderActionCard(m.theme, "No notes yet",
			"nothing has been written to the vault", "select a minute and press enter", m.width-4)
	}

	var b strings.Builder
	for _, e := range m.entries {
		lock := "  "
		if e.Note.Locked {
			lock = m.theme.warn.Render("L ")
		}
		line := fmt.Sprintf("%s%s %s",
			lock,
			m.theme.value.Render(e.Key),
			m.theme.text.Render(truncateRunes(firstLine(e.Note.Content), m.width-len(e.Key)-4)))
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m notesBrowserModel) View() string {
	return m.viewport.View()
}
