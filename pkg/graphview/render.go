package graphview

import "sort"

// Renderer tunables. The edge stroke is pre-dimmed because terminal
// cells have no alpha channel.
const (
	DefaultAutoRotateStep = 0.004
	DefaultBaseRadius     = 4.0
	fullscreenRadius      = 7.0
	edgeStroke            = "#3b4668"
	glowRadiusFactor      = 2.2
)

// RenderStats summarizes one frame for metrics and display
type RenderStats struct {
	NodesDrawn   int
	EdgesDrawn   int
	EdgesSkipped int
}

// Renderer draws one frame: edges first, then nodes farthest-first so
// nearer nodes overdraw them (painter's algorithm, no depth buffer).
type Renderer struct {
	AutoRotateStep float64
	BaseRadius     float64
	Fullscreen     bool
	ShowAllLabels  bool
}

// NewRenderer returns a renderer with the default tunables
func NewRenderer() *Renderer {
	return &Renderer{
		AutoRotateStep: DefaultAutoRotateStep,
		BaseRadius:     DefaultBaseRadius,
	}
}

type projectedNode struct {
	node *Node
	pos  Projected
}

// Draw renders the scene onto the surface. When no drag is in progress
// it advances the camera's auto-rotation first, so camera mutation
// always precedes that frame's projection. Dangling edge endpoints are
// skipped silently. Drawing onto the surface is the only side effect.
func (r *Renderer) Draw(surface Surface, scene *Scene, cam *Camera, selectedID string, vp Viewport, dragging bool) RenderStats {
	var stats RenderStats

	surface.Clear(vp)
	if scene == nil || vp.Width <= 0 || vp.Height <= 0 {
		return stats
	}

	if !dragging {
		cam.RotationY = wrapAngle(cam.RotationY + r.AutoRotateStep)
	}

	nodes := scene.Nodes()
	projected := make([]projectedNode, 0, len(nodes))
	for _, n := range nodes {
		projected = append(projected, projectedNode{node: n, pos: cam.Project(n.Position, vp)})
	}

	for i, pn := range projected {
		for _, targetID := range pn.node.Connections {
			target := scene.Lookup(targetID)
			if target == nil {
				stats.EdgesSkipped++
				continue
			}
			tp := cam.Project(target.Position, vp)
			surface.Line(projected[i].pos.X, projected[i].pos.Y, tp.X, tp.Y, edgeStroke)
			stats.EdgesDrawn++
		}
	}

	// Farthest first; stable so equal depths keep scene order
	sort.SliceStable(projected, func(i, j int) bool {
		return projected[i].pos.Depth > projected[j].pos.Depth
	})

	base := r.BaseRadius
	if r.Fullscreen {
		base = fullscreenRadius
	}

	for _, pn := range projected {
		selected := pn.node.ID == selectedID
		radius := base * pn.pos.Scale

		if selected {
			surface.Glow(pn.pos.X, pn.pos.Y, radius*glowRadiusFactor, pn.node.Color.Glow)
		}
		surface.Circle(pn.pos.X, pn.pos.Y, radius, pn.node.Color.Primary, true)
		border := pn.node.Color.Primary
		if selected {
			border = pn.node.Color.Glow
		}
		surface.Circle(pn.pos.X, pn.pos.Y, radius+1, border, false)

		if selected || r.ShowAllLabels {
			surface.Label(pn.pos.X+radius+3, pn.pos.Y, pn.node.Label, pn.node.Color.Label)
		}
		stats.NodesDrawn++
	}
	return stats
}
