package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/yoanbernabeu/chronos/vclock"
)

// breathModel shows one meter per emanation, filled to its current breathing scale.
type breathModel struct {
	bars       []progress.Model
	emanations []vclock.Emanation

	width int
	theme tuiTheme
}

func newBreathModel(theme tuiTheme, emanations []vclock.Emanation) breathModel {
	bars := make([]progress.Model, len(emanations))
	for i := range bars {
		bars[i] = progress.New(
			progress.WithGradient("#6B5A1E", "#FFD700"),
			progress.WithoutPercentage(),
		)
	}
	return breathModel{
		bars:       bars,
		emanations: emanations,
		theme:      theme,
	}
}

func (m *breathModel) setSize(w int) {
	m.width = w
	// Label "Breath 3": 9 chars, phase " exhale 100%": 13 chars, padding 2.
	available := w - 24
	if available < 10 {
		available = 10
	}
	for i := range m.bars {
		m.bars[i].Width = available
	}
}

// height is the number of rows View produces.
func (m breathModel) height() int {
	return len(m.bars)
}

func (m breathModel) View(s vclock.Snapshot) string {
	rows := make([]string, 0, len(m.bars))
	for i, bar := range m.bars {
		e := m.emanations[i]
		scale := s.Breath(e)
		status := fmt.Sprintf("%s %3.0f%%", breathPhase(s.EpochSeconds()+e.PhaseOffset), scale*100)
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center,
			m.theme.text.Width(9).Render(fmt.Sprintf("Breath %d", i+1)),
			bar.ViewAs(scale),
			m.theme.muted.Render(" "+status),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// breathPhase names the part of the cycle an absolute time falls in.
func breathPhase(seconds float64) string {
	t := math.Mod(seconds, vclock.BreathPeriod)
	if t < 0 {
		t += vclock.BreathPeriod
	}
	switch {
	case t < vclock.InhaleSeconds:
		return "inhale"
	case t < vclock.InhaleSeconds+vclock.HoldSeconds:
		return "hold  "
	default:
		return "exhale"
	}
}
