package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/yoanbernabeu/chronos/face"
	"github.com/yoanbernabeu/chronos/notes"
	"github.com/yoanbernabeu/chronos/overlay"
	"github.com/yoanbernabeu/chronos/scheduler"
	"github.com/yoanbernabeu/chronos/selection"
	"github.com/yoanbernabeu/chronos/shader"
	"github.com/yoanbernabeu/chronos/vclock"
)

const (
	clockTitle    = "* CHRONOS PLANTACERIUM *"
	clockSubtitle = "AETERNUM PRECISION ARCHIVE"
	vaultTitle    = " TEMPORAL OBSERVATION VAULT "
	vaultFooter   = " [ESC] TO LOCK NODE (SAVE INTERFACE) "
)

type clockUIFrameMsg struct {
	at time.Time
}

// clockUINotesChangedMsg reports that the note file was changed by another process.
type clockUINotesChangedMsg struct{}

type clockKeyMap struct {
	Quit   key.Binding
	Faster key.Binding
	Slower key.Binding
	Right  key.Binding
	Left   key.Binding
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Save   key.Binding
	Notes  key.Binding
	Help   key.Binding
}

func newClockKeyMap() clockKeyMap {
	return clockKeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "Q", "ctrl+c"), key.WithHelp("q", "quit")),
		Faster: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next minute")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev minute")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "+5 minutes")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "-5 minutes")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Save:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "save note")),
		Notes:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k clockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Up, k.Edit, k.Faster, k.Slower, k.Notes, k.Help, k.Quit}
}

func (k clockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Right, k.Left, k.Up, k.Down},
		{k.Edit, k.Save, k.Notes},
		{k.Faster, k.Slower, k.Help, k.Quit},
	}
}

// clockOptions carries the resolved configuration into the UI model.
type clockOptions struct {
	multiplier float64
	cadence    time.Duration
	workers    int
}

type clockUIModel struct {
	theme tuiTheme
	keys  clockKeyMap
	help  help.Model

	width  int
	height int

	real      clockwork.Clock
	clock     *vclock.VirtualClock
	sched     *scheduler.Scheduler
	selection *selection.Controller
	store     *notes.FileStore

	compositor shader.Compositor
	overlay    overlay.Overlay
	renderer   *frameRenderer

	breath      breathModel
	editor      textarea.Model
	browser     notesBrowserModel
	showBrowser bool

	lastLog      string
	lastLogLevel string
}

func newClockUIModel(real clockwork.Clock, store *notes.FileStore, opts clockOptions) clockUIModel {
	if real == nil {
		real = clockwork.NewRealClock()
	}
	theme := newTUITheme()
	emanations := vclock.DefaultEmanations()

	clock := vclock.New(real)
	clock.SetMultiplier(opts.multiplier)

	editor := textarea.New()
	editor.Placeholder = "Record the observation..."
	editor.ShowLineNumbers = false
	editor.CharLimit = 0

	browser := newNotesBrowserModel(theme)
	browser.setEntries(store.All())

	return clockUIModel{
		theme:      theme,
		keys:       newClockKeyMap(),
		help:       help.New(),
		real:       real,
		clock:      clock,
		sched:      scheduler.New(real, opts.cadence, clock.Tick),
		selection:  selection.NewController(store),
		store:      store,
		compositor: shader.Compositor{Emanations: emanations, Workers: opts.workers},
		overlay:    overlay.Overlay{Emanations: emanations},
		renderer:   newFrameRenderer(),
		breath:     newBreathModel(theme, emanations),
		editor:     editor,
		browser:    browser,
	}
}

func (m clockUIModel) Init() tea.Cmd {
	return clockUIFrameCmd(m.sched.NextWait())
}

func clockUIFrameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(at time.Time) tea.Msg {
		return clockUIFrameMsg{at: at}
	})
}

func (m clockUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.breath.setSize(msg.Width)
		m.browser.setSize(msg.Width, max(msg.Height-10, 3))
		m.editor.SetWidth(max(msg.Width*7/10-4, 10))
		m.editor.SetHeight(max(msg.Height*6/10-4, 3))
		return m, nil

	case clockUIFrameMsg:
		m.sched.Step()
		return m, clockUIFrameCmd(m.sched.NextWait())

	case clockUINotesChangedMsg:
		if err := m.store.Load(context.Background()); err != nil {
			log.Printf("failed to reload notes: %v", err)
		}
		m.browser.setEntries(m.store.All())
		return m, nil

	case clockUILogMsg:
		m.lastLog = msg.text
		m.lastLogLevel = msg.level
		return m, nil

	case tea.KeyMsg:
		next, cmd := m.handleKey(msg)
		next.sched.Step()
		return next, cmd
	}

	if m.selection.Editing() {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m clockUIModel) handleKey(msg tea.KeyMsg) (clockUIModel, tea.Cmd) {
	if m.selection.Editing() {
		switch msg.String() {
		case "esc":
			m.closeEditor()
			return m, nil
		case "ctrl+c":
			m.closeEditor()
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}

	if m.showBrowser {
		switch {
		case key.Matches(msg, m.keys.Notes), key.Matches(msg, m.keys.Save):
			m.showBrowser = false
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.browser, cmd = m.browser.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Faster):
		m.clock.Increase()
	case key.Matches(msg, m.keys.Slower):
		m.clock.Decrease()
	case key.Matches(msg, m.keys.Right):
		m.selection.Right()
	case key.Matches(msg, m.keys.Left):
		m.selection.Left()
	case key.Matches(msg, m.keys.Up):
		m.selection.Up()
	case key.Matches(msg, m.keys.Down):
		m.selection.Down()
	case key.Matches(msg, m.keys.Edit):
		content, ok := m.selection.Confirm(m.snapshot().Time)
		if !ok {
			return m, nil
		}
		m.editor.SetValue(content)
		cmd := m.editor.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Notes):
		m.browser.setEntries(m.store.All())
		m.showBrowser = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *clockUIModel) closeEditor() {
	m.selection.Cancel(m.editor.Value())
	m.editor.Blur()
	m.editor.Reset()
	m.browser.setEntries(m.store.All())
}

// snapshot reads virtual time projected to now, so frames between ticks stay smooth.
func (m clockUIModel) snapshot() vclock.Snapshot {
	return m.clock.Snapshot(m.real.Now())
}

func (m clockUIModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Starting chronos..."
	}

	snap := m.snapshot()
	header := m.renderHeader()
	status := m.renderStatus(snap, true)
	h, keep := canvasHeight(m.height, lipgloss.Height(header), lipgloss.Height(status), m.breath.height())
	if !keep {
		status = m.renderStatus(snap, false)
	}

	var body string
	switch {
	case m.selection.Editing():
		body = m.renderEditor(h)
	case m.showBrowser:
		body = m.renderBrowser(h)
	default:
		body = m.renderCanvas(snap, m.width, h)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

func (m clockUIModel) renderHeader() string {
	lines := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.title.Render(clockTitle),
		m.theme.title.Render(clockSubtitle),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, lines)
}

// renderCanvas composes one frame: shader background first, vector overlay on top,
// both from the same snapshot.
func (m clockUIModel) renderCanvas(snap vclock.Snapshot, width, height int) string {
	g := face.NewGeometry(width, height)
	f := face.NewFrame(width, height)
	if err := m.compositor.Paint(f, g, snap); err != nil {
		log.Printf("failed to paint background: %v", err)
	}
	m.overlay.Draw(f, g, snap, m.selection.State().Highlight())
	return m.renderer.Render(f)
}

func (m clockUIModel) renderStatus(snap vclock.Snapshot, withMeters bool) string {
	speedStyle := m.theme.ok
	if snap.Multiplier > 1 {
		speedStyle = m.theme.danger
	}
	parts := []string{
		m.theme.text.Render("SPEED: ") + speedStyle.Render(fmt.Sprintf("%.1fx", snap.Multiplier)),
		m.theme.muted.Render("EXPERIENCE UNITS: ") + m.theme.value.Render(fmt.Sprintf("%d", snap.ExperienceUnits())),
		m.theme.text.Render("MINUTE: ") + m.selectedLabel(),
	}
	rows := []string{strings.Join(parts, m.theme.muted.Render(" | "))}
	if withMeters {
		rows = append(rows, m.breath.View(snap))
	}
	if m.lastLog != "" {
		style := m.theme.muted
		switch m.lastLogLevel {
		case "error":
			style = m.theme.danger
		case "warn":
			style = m.theme.warn
		}
		rows = append(rows, style.Render(truncateRunes(m.lastLog, m.width-2)))
	}
	rows = append(rows, m.help.View(m.keys))
	return m.theme.panel.Width(m.width).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m clockUIModel) selectedLabel() string {
	minute, ok := m.selection.State().Minute()
	if !ok {
		return m.theme.muted.Render("--")
	}
	label := fmt.Sprintf("%02d", minute)
	if m.selection.Editing() {
		return m.theme.highlight.Render(label + " editing")
	}
	return m.theme.value.Render(label)
}

func (m clockUIModel) renderEditor(height int) string {
	session, _ := m.selection.Session()
	title := m.theme.title.Render(vaultTitle)
	node := m.theme.subtitle.Render(fmt.Sprintf("Temporal Observation Node: Minute %02d", session.Minute))
	footer := m.theme.muted.Render(vaultFooter)
	box := m.theme.modal.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		node,
		m.editor.View(),
		lipgloss.PlaceHorizontal(m.editor.Width(), lipgloss.Right, footer),
	))
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, box)
}

func (m clockUIModel) renderBrowser(height int) string {
	title := m.theme.title.Render(fmt.Sprintf(" NOTES (%d) ", m.store.Len()))
	path := m.theme.muted.Render(truncateRunes(m.store.Path(), m.width-4))
	content := lipgloss.JoinVertical(lipgloss.Left, title, path, m.browser.View())
	return lipgloss.Place(m.width, height, lipgloss.Left, lipgloss.Top, content)
}
