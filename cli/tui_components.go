package cli

import (
	"fmt"
	"strings"
)

// minCanvasHeight keeps the dial readable when the status panel would crowd it out.
const minCanvasHeight = 10

func renderActionCard(theme tuiTheme, title, why, action string, width int) string {
	if width < 20 {
		width = 20
	}
	body := strings.Builder{}
	body.WriteString(theme.subtitle.Render(title))
	body.WriteString("\n")
	body.WriteString(theme.muted.Render("Why: "))
	body.WriteString(theme.text.Render(why))
	body.WriteString("\n")
	body.WriteString(theme.title.Render("Next: "))
	body.WriteString(theme.highlight.Render(action))
	return theme.modal.Width(width).Render(body.String())
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	if limit <= 3 {
		return string(r[:limit])
	}
	return fmt.Sprintf("%s...", string(r[:limit-3]))
}

// firstLine returns the first line of a note, for one-line listings.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// canvasHeight splits the terminal rows between the dial and the chrome around it.
// The second result is false when the status panel should drop its breath meters to
// leave the dial at least minCanvasHeight rows.
func canvasHeight(total, header, status, meters int) (int, bool) {
	h := total - header - status
	if h >= minCanvasHeight || meters == 0 {
		return max(h, 1), true
	}
	h += meters
	return max(h, 1), false
}
