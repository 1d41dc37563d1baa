package graphview

// Vec3 is a point in scene space
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Entity is the raw input handed to the layout generator by the data owner
type Entity struct {
	ID    string
	Label string
	Type  string
}

// Edge is an undirected connection between two entities
type Edge struct {
	Source string
	Target string
}

// Node is a positioned, colored entity ready for rendering.
// Position is assigned once by the layout generator and never mutated
// by rotation; only projected screen coordinates change per frame.
type Node struct {
	ID          string
	Label       string
	Type        string
	Position    Vec3
	Connections []string
	Color       Swatch
}

// Swatch is the resolved draw colors for one node category
type Swatch struct {
	Primary string `yaml:"primary" json:"primary"`
	Glow    string `yaml:"glow" json:"glow"`
	Label   string `yaml:"label" json:"label"`
}

// ColorScheme maps node categories to swatches. A "default" entry is
// required; unknown categories fall back to it rather than erroring.
type ColorScheme map[string]Swatch

// Resolve returns the swatch for a category, falling back to default
func (cs ColorScheme) Resolve(category string) Swatch {
	if sw, ok := cs[category]; ok {
		return sw
	}
	return cs["default"]
}

// Viewport is the drawing surface size in canvas dots
type Viewport struct {
	Width  int
	Height int
}

// Projected is the result of mapping a scene point onto the surface
type Projected struct {
	X     float64
	Y     float64
	Scale float64
	Depth float64
}

// Surface is the drawing target for one frame. Implementations include
// the terminal braille canvas, the gg raster surface and the svgo vector
// surface; tests use a recording surface to assert draw order.
type Surface interface {
	Clear(vp Viewport)
	Line(x0, y0, x1, y1 float64, color string)
	Circle(x, y, r float64, color string, fill bool)
	Glow(x, y, r float64, color string)
	Label(x, y float64, text, color string)
}
