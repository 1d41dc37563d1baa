package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/dd0wney/cluso-opsdeck/pkg/graphview"
)

const svgBackground = "#1e1e2e"

// svgSurface adapts an svgo canvas to the renderer's Surface
type svgSurface struct {
	canvas *svg.SVG
}

func (s *svgSurface) Clear(vp graphview.Viewport) {
	s.canvas.Rect(0, 0, vp.Width, vp.Height, "fill:"+svgBackground)
}

func (s *svgSurface) Line(x0, y0, x1, y1 float64, color string) {
	s.canvas.Line(int(x0), int(y0), int(x1), int(y1),
		fmt.Sprintf("stroke:%s;stroke-width:1;stroke-opacity:0.6", color))
}

func (s *svgSurface) Circle(x, y, r float64, color string, fill bool) {
	style := fmt.Sprintf("fill:none;stroke:%s;stroke-width:1.5", color)
	if fill {
		style = "fill:" + color
	}
	s.canvas.Circle(int(x), int(y), int(r), style)
}

func (s *svgSurface) Glow(x, y, r float64, color string) {
	s.canvas.Circle(int(x), int(y), int(r),
		fmt.Sprintf("fill:%s;fill-opacity:0.25", color))
}

func (s *svgSurface) Label(x, y float64, text, color string) {
	s.canvas.Text(int(x), int(y),
		text, fmt.Sprintf("fill:%s;font-family:monospace;font-size:12px", color))
}

// SVG renders one frame of the scene as a vector image. The camera is
// copied so a snapshot never advances the live rotation.
func SVG(w io.Writer, scene *graphview.Scene, cam graphview.Camera, selectedID string, vp graphview.Viewport) error {
	canvas := svg.New(w)
	canvas.Start(vp.Width, vp.Height)

	r := graphview.NewRenderer()
	r.AutoRotateStep = 0
	r.BaseRadius = 8
	r.ShowAllLabels = true
	r.Draw(&svgSurface{canvas: canvas}, scene, &cam, selectedID, vp, false)

	canvas.End()
	return nil
}
