package export

import (
	"io"

	"git.sr.ht/~sbinet/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dd0wney/cluso-opsdeck/pkg/graphview"
)

// ggSurface adapts a gg raster context to the renderer's Surface
type ggSurface struct {
	dc *gg.Context
}

func (s *ggSurface) Clear(vp graphview.Viewport) {
	s.dc.SetHexColor(svgBackground)
	s.dc.Clear()
}

func (s *ggSurface) Line(x0, y0, x1, y1 float64, color string) {
	s.setColor(color, 0.6)
	s.dc.SetLineWidth(1)
	s.dc.DrawLine(x0, y0, x1, y1)
	s.dc.Stroke()
}

func (s *ggSurface) Circle(x, y, r float64, color string, fill bool) {
	s.setColor(color, 1)
	s.dc.DrawCircle(x, y, r)
	if fill {
		s.dc.Fill()
	} else {
		s.dc.SetLineWidth(1.5)
		s.dc.Stroke()
	}
}

func (s *ggSurface) Glow(x, y, r float64, color string) {
	s.setColor(color, 0.25)
	s.dc.DrawCircle(x, y, r)
	s.dc.Fill()
}

func (s *ggSurface) Label(x, y float64, text, color string) {
	s.setColor(color, 1)
	s.dc.DrawStringAnchored(text, x, y, 0, 0.5)
}

func (s *ggSurface) setColor(hex string, alpha float64) {
	col, err := colorful.Hex(hex)
	if err != nil {
		col = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	s.dc.SetRGBA(col.R, col.G, col.B, alpha)
}

// PNG renders one frame of the scene as a raster image
func PNG(w io.Writer, scene *graphview.Scene, cam graphview.Camera, selectedID string, vp graphview.Viewport) error {
	dc := gg.NewContext(vp.Width, vp.Height)

	r := graphview.NewRenderer()
	r.AutoRotateStep = 0
	r.BaseRadius = 8
	r.ShowAllLabels = true
	r.Draw(&ggSurface{dc: dc}, scene, &cam, selectedID, vp, false)

	return dc.EncodePNG(w)
}
