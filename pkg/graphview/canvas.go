package graphview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// brailleBits maps a dot position within a 2x4 cell to its bit in the
// braille pattern block (U+2800..U+28FF)
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a terminal drawing surface with braille sub-cell resolution:
// every character cell holds a 2x4 grid of dots. Coordinates on the
// Surface API are in dots, so a canvas of C columns and R rows exposes a
// 2C x 4R viewport.
type Canvas struct {
	cols, rows int
	dots       []uint8
	colors     []string
	overlay    []rune
	overlayCol []string

	styles map[string]lipgloss.Style
}

// NewCanvas creates a canvas with the given character cell dimensions
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{styles: make(map[string]lipgloss.Style)}
	c.resize(cols, rows)
	return c
}

func (c *Canvas) resize(cols, rows int) {
	c.cols, c.rows = cols, rows
	c.dots = make([]uint8, cols*rows)
	c.colors = make([]string, cols*rows)
	c.overlay = make([]rune, cols*rows)
	c.overlayCol = make([]string, cols*rows)
}

// Viewport returns the canvas size in dots
func (c *Canvas) Viewport() Viewport {
	return Viewport{Width: c.cols * 2, Height: c.rows * 4}
}

// Clear wipes the canvas, growing or shrinking the cell buffers when the
// requested viewport no longer matches. A resize rebinds the buffers and
// nothing else; camera and scene state are untouched.
func (c *Canvas) Clear(vp Viewport) {
	cols, rows := (vp.Width+1)/2, (vp.Height+3)/4
	if cols != c.cols || rows != c.rows {
		c.resize(cols, rows)
		return
	}
	for i := range c.dots {
		c.dots[i] = 0
		c.colors[i] = ""
		c.overlay[i] = 0
		c.overlayCol[i] = ""
	}
}

// Set turns on a single dot. Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, color string) {
	if x < 0 || y < 0 || x >= c.cols*2 || y >= c.rows*4 {
		return
	}
	idx := (y/4)*c.cols + x/2
	c.dots[idx] |= brailleBits[y%4][x%2]
	c.colors[idx] = color
}

// Line draws a straight segment between two dot coordinates
func (c *Canvas) Line(x0, y0, x1, y1 float64, color string) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx, dy := abs(ix1-ix0), -abs(iy1-iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.Set(ix0, iy0, color)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// Circle draws a node disc or its border ring at dot coordinates
func (c *Canvas) Circle(x, y, r float64, color string, fill bool) {
	if r < 1 {
		r = 1
	}
	cx, cy := int(math.Round(x)), int(math.Round(y))
	ir := int(math.Ceil(r))
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if fill && d <= r {
				c.Set(cx+dx, cy+dy, color)
			} else if !fill && d >= r-0.6 && d <= r+0.6 {
				c.Set(cx+dx, cy+dy, color)
			}
		}
	}
}

// Glow draws a faded halo ring behind a highlighted node
func (c *Canvas) Glow(x, y, r float64, color string) {
	faded := fade(color, 0.45)
	steps := int(4 * r)
	if steps < 8 {
		steps = 8
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		c.Set(int(math.Round(x+r*math.Cos(a))), int(math.Round(y+r*math.Sin(a))), faded)
	}
}

// Label writes text starting at the cell containing the dot coordinate
func (c *Canvas) Label(x, y float64, text, color string) {
	col := int(math.Round(x)) / 2
	row := int(math.Round(y)) / 4
	if row < 0 || row >= c.rows {
		return
	}
	for i, r := range text {
		cc := col + i
		if cc < 0 || cc >= c.cols {
			continue
		}
		c.overlay[row*c.cols+cc] = r
		c.overlayCol[row*c.cols+cc] = color
	}
}

// String renders the canvas as styled terminal text
func (c *Canvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			idx := row*c.cols + col
			switch {
			case c.overlay[idx] != 0:
				b.WriteString(c.style(c.overlayCol[idx]).Render(string(c.overlay[idx])))
			case c.dots[idx] != 0:
				b.WriteString(c.style(c.colors[idx]).Render(string(rune(0x2800 + int(c.dots[idx])))))
			default:
				b.WriteByte(' ')
			}
		}
		if row < c.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (c *Canvas) style(color string) lipgloss.Style {
	if s, ok := c.styles[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	c.styles[color] = s
	return s
}

// fade blends a hex color toward black to stand in for alpha on a
// terminal that has none
func fade(hex string, t float64) string {
	col, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	return col.BlendRgb(colorful.Color{}, t).Hex()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
