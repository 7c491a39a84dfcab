package face

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Max returns the brightest channel.
func (c RGB) Max() uint8 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

// AddSat adds two colors channel by channel, saturating at 255.
func (c RGB) AddSat(o RGB) RGB {
	return RGB{R: addSat(c.R, o.R), G: addSat(c.G, o.G), B: addSat(c.B, o.B)}
}

// Scale multiplies each channel by k, saturating at 255. Negative k yields black.
func (c RGB) Scale(k float64) RGB {
	return RGB{R: clampByte(float64(c.R) * k), G: clampByte(float64(c.G) * k), B: clampByte(float64(c.B) * k)}
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Cell is one character cell of a composed frame. A cell without a background is
// transparent; a zero Glyph means no vector shape covers it.
type Cell struct {
	Bg    RGB
	HasBg bool
	Fg    RGB
	Glyph rune
}

// Frame is a row-major grid of cells.
type Frame struct {
	Width  int
	Height int
	Cells  []Cell
}

// NewFrame allocates an empty frame.
func NewFrame(width, height int) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Frame{Width: width, Height: height, Cells: make([]Cell, width*height)}
}

// At returns a pointer to the cell at (col, row). Callers must stay on the grid.
func (f *Frame) At(col, row int) *Cell {
	return &f.Cells[row*f.Width+col]
}

// Row returns the cells of one row.
func (f *Frame) Row(row int) []Cell {
	return f.Cells[row*f.Width : (row+1)*f.Width]
}

// SetBackground paints a cell's background.
func (f *Frame) SetBackground(col, row int, c RGB) {
	cell := f.At(col, row)
	cell.Bg = c
	cell.HasBg = true
}

// SetGlyph places a foreground glyph, replacing whatever glyph was there.
func (f *Frame) SetGlyph(col, row int, glyph rune, c RGB) {
	cell := f.At(col, row)
	cell.Glyph = glyph
	cell.Fg = c
}
