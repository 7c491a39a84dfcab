package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/yoanbernabeu/chronos/face"
)

func TestFrameRendererKeepsGridShape(t *testing.T) {
	f := face.NewFrame(5, 2)
	f.SetGlyph(1, 0, '•', face.RGB{R: 212, G: 175, B: 55})
	f.SetBackground(3, 1, face.RGB{R: 40, G: 30, B: 5})

	r := newFrameRenderer()
	lines := strings.Split(stripANSI(r.Render(f)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != " •   " {
		t.Fatalf("row 0 = %q", lines[0])
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 5 {
			t.Fatalf("row %d width = %d, want 5", i, w)
		}
	}
}

func TestFrameRendererCachesStylesPerLook(t *testing.T) {
	f := face.NewFrame(4, 1)
	gold := face.RGB{R: 212, G: 175, B: 55}
	f.SetGlyph(0, 0, '•', gold)
	f.SetGlyph(2, 0, '•', gold)

	r := newFrameRenderer()
	r.Render(f)
	r.Render(f)
	// Blank cells and gold dots.
	if len(r.styles) != 2 {
		t.Fatalf("cached %d styles, want 2", len(r.styles))
	}
}

func TestHexColor(t *testing.T) {
	if got := hexColor(face.RGB{R: 212, G: 175, B: 55}); got != "#d4af37" {
		t.Fatalf("hexColor() = %q, want #d4af37", got)
	}
}
