package graphview

import "math"

// Interaction tunables, in canvas dots
const (
	DefaultDragSensitivity = 0.01
	DefaultHitThreshold    = 12.0
	dragSlop               = 3.0
)

// Controller owns pointer state: a drag rotates the camera, a press that
// never travels past the slop resolves as a click. Auto-rotation is the
// renderer's job and pauses whenever Dragging reports true.
type Controller struct {
	Sensitivity  float64
	HitThreshold float64

	dragging bool
	traveled float64
	anchorX  float64
	anchorY  float64
}

// NewController returns a controller with the default tunables
func NewController() *Controller {
	return &Controller{
		Sensitivity:  DefaultDragSensitivity,
		HitThreshold: DefaultHitThreshold,
	}
}

// Dragging reports whether a pointer drag is in progress
func (c *Controller) Dragging() bool {
	return c.dragging
}

// PointerDown enters the dragging state and records the drag anchor
func (c *Controller) PointerDown(x, y float64) {
	c.dragging = true
	c.traveled = 0
	c.anchorX, c.anchorY = x, y
}

// PointerMove applies the delta from the anchor to the camera and
// re-anchors at the new position (incremental, not absolute, tracking)
func (c *Controller) PointerMove(x, y float64, cam *Camera) {
	if !c.dragging {
		return
	}
	dx := x - c.anchorX
	dy := y - c.anchorY
	c.traveled += math.Abs(dx) + math.Abs(dy)
	cam.Rotate(dy*c.Sensitivity, dx*c.Sensitivity)
	c.anchorX, c.anchorY = x, y
}

// PointerUp leaves the dragging state and reports whether the gesture
// should resolve as a click rather than a drag
func (c *Controller) PointerUp() (click bool) {
	if !c.dragging {
		return false
	}
	c.dragging = false
	return c.traveled <= dragSlop
}

// PointerLeave cancels any drag in progress without producing a click
func (c *Controller) PointerLeave() {
	c.dragging = false
	c.traveled = dragSlop + 1
}

// HitTest re-projects every node with the current camera state, the
// same math the renderer uses, and returns the first node within the
// threshold of the click, or nil
func (c *Controller) HitTest(scene *Scene, cam Camera, vp Viewport, x, y float64) *Node {
	if scene == nil {
		return nil
	}
	for _, n := range scene.Nodes() {
		p := cam.Project(n.Position, vp)
		if math.Hypot(p.X-x, p.Y-y) <= c.HitThreshold {
			return n
		}
	}
	return nil
}
