package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yoanbernabeu/chronos/face"
)

// cellStyleKey identifies the look of a cell; adjacent cells with equal keys are
// written as one styled run.
type cellStyleKey struct {
	bg    face.RGB
	hasBg bool
	fg    face.RGB
	hasFg bool
}

// frameRenderer turns a face.Frame into terminal text, caching one lipgloss style
// per distinct cell look.
type frameRenderer struct {
	styles map[cellStyleKey]lipgloss.Style
}

func newFrameRenderer() *frameRenderer {
	return &frameRenderer{styles: make(map[cellStyleKey]lipgloss.Style)}
}

// maxCachedStyles resets the cache once the shader gradients have filled it.
const maxCachedStyles = 8192

func (r *frameRenderer) style(k cellStyleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	if len(r.styles) >= maxCachedStyles {
		r.styles = make(map[cellStyleKey]lipgloss.Style)
	}
	st := lipgloss.NewStyle()
	if k.hasBg {
		st = st.Background(lipgloss.Color(hexColor(k.bg)))
	}
	if k.hasFg {
		st = st.Foreground(lipgloss.Color(hexColor(k.fg)))
	}
	r.styles[k] = st
	return st
}

// Render returns the frame as Height lines of Width cells each.
func (r *frameRenderer) Render(f *face.Frame) string {
	lines := make([]string, f.Height)
	var run strings.Builder
	for row := 0; row < f.Height; row++ {
		var line strings.Builder
		cells := f.Row(row)
		start := 0
		for start < len(cells) {
			key := keyOf(cells[start])
			run.Reset()
			end := start
			for end < len(cells) && keyOf(cells[end]) == key {
				run.WriteRune(glyphOf(cells[end]))
				end++
			}
			line.WriteString(r.style(key).Render(run.String()))
			start = end
		}
		lines[row] = line.String()
	}
	return strings.Join(lines, "\n")
}

func keyOf(c face.Cell) cellStyleKey {
	k := cellStyleKey{bg: c.Bg, hasBg: c.HasBg}
	if c.Glyph != 0 {
		k.fg = c.Fg
		k.hasFg = true
	}
	return k
}

func glyphOf(c face.Cell) rune {
	if c.Glyph == 0 {
		return ' '
	}
	return c.Glyph
}

func hexColor(c face.RGB) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
