package graphview

import (
	"strings"
	"testing"
)

func TestCanvasViewport(t *testing.T) {
	c := NewCanvas(40, 10)
	vp := c.Viewport()
	if vp.Width != 80 || vp.Height != 40 {
		t.Errorf("Viewport = %+v, want 80x40 dots", vp)
	}
}

func TestCanvasSetDot(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, "#ffffff")

	out := c.String()
	if !strings.ContainsRune(out, rune(0x2801)) {
		t.Errorf("expected top-left braille dot in %q", out)
	}

	// Out-of-range writes are dropped, not panics
	c.Set(-1, 0, "#ffffff")
	c.Set(8, 0, "#ffffff")
	c.Set(0, 8, "#ffffff")
}

func TestCanvasDotPacking(t *testing.T) {
	// All eight dots of one cell produce the full braille block
	c := NewCanvas(1, 1)
	for y := 0; y < 4; y++ {
		for x := 0; x < 2; x++ {
			c.Set(x, y, "#ffffff")
		}
	}
	if !strings.ContainsRune(c.String(), rune(0x28FF)) {
		t.Errorf("expected full cell U+28FF in %q", c.String())
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(1, 1, "#ffffff")
	c.Label(0, 4, "x", "#ffffff")

	c.Clear(c.Viewport())
	if strings.TrimSpace(c.String()) != "" {
		t.Errorf("canvas not empty after clear: %q", c.String())
	}
}

func TestCanvasClearResizes(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Clear(Viewport{Width: 20, Height: 12})
	vp := c.Viewport()
	if vp.Width != 20 || vp.Height != 12 {
		t.Errorf("Viewport after resize = %+v, want 20x12", vp)
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(0, 0, 19, 39, "#ffffff")

	lit := 0
	for _, d := range c.dots {
		if d != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("line lit no cells")
	}
	// Endpoints must be present
	if c.dots[0]&brailleBits[0][0] == 0 {
		t.Error("line missing its start dot")
	}
	last := 9*c.cols + 9
	if c.dots[last]&brailleBits[3][1] == 0 {
		t.Error("line missing its end dot")
	}
}

func TestCanvasCircleFillVersusRing(t *testing.T) {
	fill := NewCanvas(10, 10)
	fill.Circle(10, 20, 5, "#ffffff", true)

	ring := NewCanvas(10, 10)
	ring.Circle(10, 20, 5, "#ffffff", false)

	count := func(c *Canvas) int {
		n := 0
		for _, d := range c.dots {
			if d != 0 {
				n++
			}
		}
		return n
	}
	if count(fill) <= count(ring) {
		t.Errorf("filled disc (%d cells) should cover more than its ring (%d)", count(fill), count(ring))
	}
}

func TestCanvasLabelOverlay(t *testing.T) {
	c := NewCanvas(10, 2)
	c.Circle(4, 2, 2, "#ff0000", true)
	c.Label(0, 0, "node", "#ffffff")

	out := c.String()
	for _, r := range "node" {
		if !strings.ContainsRune(out, r) {
			t.Fatalf("label rune %q missing from output", r)
		}
	}
	// Off-canvas labels are dropped
	c.Label(0, 100, "below", "#ffffff")
	if strings.Contains(c.String(), "below") {
		t.Error("out-of-range label should be ignored")
	}
}

func TestFade(t *testing.T) {
	if got := fade("#ffffff", 0.5); got == "#ffffff" {
		t.Error("fade toward black should darken the color")
	}
	// Unparseable input passes through untouched
	if got := fade("nothex", 0.5); got != "nothex" {
		t.Errorf("fade(invalid) = %q, want passthrough", got)
	}
}
