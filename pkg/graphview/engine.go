package graphview

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dd0wney/cluso-opsdeck/pkg/logging"
	"github.com/dd0wney/cluso-opsdeck/pkg/metrics"
)

// DefaultColorScheme is used when no scheme is configured
var DefaultColorScheme = ColorScheme{
	"default": {Primary: "#6272a4", Glow: "#bd93f9", Label: "#f8f8f2"},
	"agent":   {Primary: "#50fa7b", Glow: "#8be9fd", Label: "#f8f8f2"},
	"ledger":  {Primary: "#ffb86c", Glow: "#f1fa8c", Label: "#f8f8f2"},
	"space":   {Primary: "#ff79c6", Glow: "#bd93f9", Label: "#f8f8f2"},
}

// Engine owns the scene, camera and selection behind a single-writer
// API. All mutation happens through its methods from one goroutine (the
// frame loop); external collaborators only supply data and observe
// selection via the OnSelect callback.
type Engine struct {
	scene      *Scene
	camera     Camera
	viewport   Viewport
	selectedID string

	controller *Controller
	renderer   *Renderer
	scheme     ColorScheme
	rng        *rand.Rand

	entities []Entity
	edges    []Edge
	pending  bool

	onSelect func(*Node)
	logger   logging.Logger
	metrics  *metrics.Registry
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger attaches a structured logger
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithMetrics attaches a metrics registry
func WithMetrics(r *metrics.Registry) Option {
	return func(e *Engine) { e.metrics = r }
}

// WithColorScheme overrides the default color scheme
func WithColorScheme(cs ColorScheme) Option {
	return func(e *Engine) { e.scheme = cs }
}

// WithRand injects the layout jitter source, so tests can seed it
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithRenderer overrides the default renderer tunables
func WithRenderer(r *Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithController overrides the default interaction tunables
func WithController(c *Controller) Option {
	return func(e *Engine) { e.controller = c }
}

// NewEngine creates an engine in 3D mode with an empty scene
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		camera:     Camera{ThreeD: true},
		controller: NewController(),
		renderer:   NewRenderer(),
		scheme:     DefaultColorScheme,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		logger:     logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetData replaces the scene from raw entities and edges. Positions are
// recomputed here and only here; rotation never triggers a relayout.
// When the viewport is still unknown the layout is deferred until the
// first resize. A previously selected node that no longer exists resets
// the selection to none and notifies the subscriber.
func (e *Engine) SetData(entities []Entity, edges []Edge) {
	e.entities = entities
	e.edges = edges
	if e.viewport.Width <= 0 || e.viewport.Height <= 0 {
		e.pending = true
		return
	}
	e.rebuild()
}

func (e *Engine) rebuild() {
	nodes := GenerateLayout(e.entities, e.viewport, e.rng)
	e.scene = NewScene(nodes, e.edges, e.scheme)
	e.pending = false
	e.logger.Debug("scene rebuilt",
		logging.Component("graphview"),
		logging.Int("nodes", e.scene.NodeCount()),
		logging.Int("edges", e.scene.EdgeCount()))
	if e.metrics != nil {
		e.metrics.RecordSceneRebuild(e.scene.NodeCount(), e.scene.EdgeCount())
	}

	if e.selectedID != "" && e.scene.Lookup(e.selectedID) == nil {
		e.selectedID = ""
		e.notifySelect(nil)
	}
}

// Resize updates the viewport. The first resize after deferred data
// triggers the pending layout; later resizes only rebind the surface.
func (e *Engine) Resize(width, height int) {
	e.viewport = Viewport{Width: width, Height: height}
	if e.pending && width > 0 && height > 0 {
		e.rebuild()
	}
}

// Viewport returns the current viewport in dots
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Frame draws one frame onto the surface. Within the frame, camera
// mutation (auto-rotate) happens before projection and projection before
// drawing; edges are drawn before nodes, farthest node first.
func (e *Engine) Frame(surface Surface) RenderStats {
	start := time.Now()
	stats := e.renderer.Draw(surface, e.scene, &e.camera, e.selectedID, e.viewport, e.controller.Dragging())
	if e.metrics != nil {
		e.metrics.RecordFrame(time.Since(start), stats.NodesDrawn, stats.EdgesDrawn, stats.EdgesSkipped)
	}
	return stats
}

// PointerDown begins a possible drag at dot coordinates
func (e *Engine) PointerDown(x, y float64) {
	e.controller.PointerDown(x, y)
}

// PointerMove continues a drag, rotating the camera
func (e *Engine) PointerMove(x, y float64) {
	e.controller.PointerMove(x, y, &e.camera)
}

// PointerUp ends the gesture. A gesture that never became a drag is
// resolved as a click: the first node within the hit threshold is
// selected (toggling off if already selected), a miss clears selection.
func (e *Engine) PointerUp(x, y float64) {
	if !e.controller.PointerUp() {
		return
	}
	hit := e.controller.HitTest(e.scene, e.camera, e.viewport, x, y)
	switch {
	case hit == nil:
		e.setSelection("")
	case hit.ID == e.selectedID:
		e.setSelection("")
	default:
		e.setSelection(hit.ID)
	}
}

// PointerLeave cancels a drag without resolving a click
func (e *Engine) PointerLeave() {
	e.controller.PointerLeave()
}

// Select sets the selection from outside the pointer path, e.g. a list
// panel picking a node by name
func (e *Engine) Select(id string) error {
	if e.scene == nil {
		return ErrNoScene
	}
	if e.scene.Lookup(id) == nil {
		return fmt.Errorf("select %q: %w", id, ErrNodeNotFound)
	}
	e.setSelection(id)
	return nil
}

// ClearSelection resets the selection to none
func (e *Engine) ClearSelection() {
	e.setSelection("")
}

// Selected returns the currently selected node, or nil
func (e *Engine) Selected() *Node {
	if e.scene == nil || e.selectedID == "" {
		return nil
	}
	return e.scene.Lookup(e.selectedID)
}

// OnSelect registers the selection callback. It fires with the node on
// selection and with nil when selection clears.
func (e *Engine) OnSelect(fn func(*Node)) {
	e.onSelect = fn
}

// Counts reports the current scene's node and drawable edge counts
func (e *Engine) Counts() (nodes, edges int) {
	if e.scene == nil {
		return 0, 0
	}
	return e.scene.NodeCount(), e.scene.EdgeCount()
}

// Scene returns the current scene snapshot, or nil before data arrives
func (e *Engine) Scene() *Scene {
	return e.scene
}

// Camera returns a copy of the camera state for read-only consumers
func (e *Engine) Camera() Camera {
	return e.camera
}

// SetThreeD toggles the perspective divide. Rotation still applies in
// 2D mode; only the divide is fixed at 1.
func (e *Engine) SetThreeD(on bool) {
	e.camera.ThreeD = on
}

func (e *Engine) setSelection(id string) {
	if id == e.selectedID {
		return
	}
	e.selectedID = id
	if e.metrics != nil {
		e.metrics.RecordSelection()
	}
	var node *Node
	if id != "" && e.scene != nil {
		node = e.scene.Lookup(id)
	}
	e.notifySelect(node)
}

func (e *Engine) notifySelect(n *Node) {
	if e.onSelect != nil {
		e.onSelect(n)
	}
}
