package graphview

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e := NewEngine(
		WithRand(rand.New(rand.NewSource(1))),
		WithRenderer(&Renderer{BaseRadius: DefaultBaseRadius}),
	)
	e.Resize(400, 400)
	return e
}

func testEntities() ([]Entity, []Edge) {
	entities := []Entity{
		{ID: "a1", Label: "agent-1", Type: "agent"},
		{ID: "s1", Label: "space-1", Type: "space"},
		{ID: "l1", Label: "ledger-1", Type: "ledger"},
	}
	edges := []Edge{
		{Source: "a1", Target: "s1"},
		{Source: "l1", Target: "s1"},
	}
	return entities, edges
}

func TestEngineSetData(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())

	nodes, edges := e.Counts()
	assert.Equal(t, 3, nodes)
	assert.Equal(t, 2, edges)
	require.NotNil(t, e.Scene())
	assert.NotNil(t, e.Scene().Lookup("a1"))
}

func TestEngineDeferredLayout(t *testing.T) {
	e := NewEngine(WithRand(rand.New(rand.NewSource(1))))

	// Data before any resize: viewport unknown, layout deferred
	e.SetData(testEntities())
	assert.Nil(t, e.Scene(), "no scene before the viewport is known")

	e.Resize(400, 400)
	require.NotNil(t, e.Scene(), "first resize runs the deferred layout")
	nodes, _ := e.Counts()
	assert.Equal(t, 3, nodes)
}

func TestEngineResizeKeepsPositions(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())

	before := e.Scene().Lookup("a1").Position
	e.Resize(600, 300)
	assert.Equal(t, before, e.Scene().Lookup("a1").Position,
		"a resize alone never recomputes the layout")
}

func TestEngineSelect(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())

	var got []*Node
	e.OnSelect(func(n *Node) { got = append(got, n) })

	require.NoError(t, e.Select("a1"))
	require.NotNil(t, e.Selected())
	assert.Equal(t, "a1", e.Selected().ID)

	// Same id again is a no-op, no second callback
	require.NoError(t, e.Select("a1"))
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	e.ClearSelection()
	assert.Nil(t, e.Selected())
	require.Len(t, got, 2)
	assert.Nil(t, got[1])
}

func TestEngineSelectErrors(t *testing.T) {
	e := NewEngine()
	assert.ErrorIs(t, e.Select("a1"), ErrNoScene)

	e.Resize(400, 400)
	e.SetData(testEntities())
	err := e.Select("nope")
	assert.ErrorIs(t, err, ErrNodeNotFound)
	assert.Nil(t, e.Selected())
}

func TestEngineSelectionResetOnReplace(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())
	require.NoError(t, e.Select("a1"))

	var cleared bool
	e.OnSelect(func(n *Node) { cleared = n == nil })

	// Replace the data with a set that no longer contains the selection
	e.SetData([]Entity{{ID: "x1", Type: "agent"}}, nil)
	assert.Nil(t, e.Selected())
	assert.True(t, cleared, "losing the selected node notifies with nil")
}

func TestEngineSelectionSurvivesReplace(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())
	require.NoError(t, e.Select("a1"))

	e.SetData(testEntities())
	require.NotNil(t, e.Selected())
	assert.Equal(t, "a1", e.Selected().ID)
}

func TestEngineClickSelection(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())
	target := e.Scene().Lookup("s1")
	p := e.Camera().Project(target.Position, e.Viewport())

	// Press and release in place on the node: select
	e.PointerDown(p.X, p.Y)
	e.PointerUp(p.X, p.Y)
	require.NotNil(t, e.Selected())
	assert.Equal(t, "s1", e.Selected().ID)

	// Same click again: toggle off
	e.PointerDown(p.X, p.Y)
	e.PointerUp(p.X, p.Y)
	assert.Nil(t, e.Selected())
}

func TestEngineClickMissClears(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())
	require.NoError(t, e.Select("a1"))

	// Viewport center is inside the ring, far from every node
	e.PointerDown(200, 200)
	e.PointerUp(200, 200)
	assert.Nil(t, e.Selected())
}

func TestEngineDragDoesNotSelect(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())
	target := e.Scene().Lookup("s1")
	p := e.Camera().Project(target.Position, e.Viewport())

	e.PointerDown(p.X-20, p.Y)
	e.PointerMove(p.X, p.Y)
	e.PointerUp(p.X, p.Y)
	assert.Nil(t, e.Selected(), "a drag ending on a node is not a click")
	assert.NotZero(t, e.Camera().RotationY, "the drag rotated the camera")
}

func TestEngineFrame(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())

	surface := &recordingSurface{}
	stats := e.Frame(surface)
	assert.Equal(t, 3, stats.NodesDrawn)
	assert.Equal(t, 2, stats.EdgesDrawn)
	assert.Len(t, surface.cleared, 1)
}

func TestEngineFrameBeforeData(t *testing.T) {
	e := NewEngine()
	e.Resize(400, 400)

	surface := &recordingSurface{}
	stats := e.Frame(surface)
	assert.Zero(t, stats.NodesDrawn)
	assert.Len(t, surface.cleared, 1, "an empty frame still clears")
}

func TestEngineSetThreeD(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())

	e.SetThreeD(false)
	assert.False(t, e.Camera().ThreeD)
	p := e.Camera().Project(Vec3{X: 10, Z: 50}, e.Viewport())
	assert.Equal(t, 1.0, p.Scale, "2D mode pins the perspective scale")

	e.SetThreeD(true)
	assert.True(t, e.Camera().ThreeD)
}

func TestErrNodeNotFoundWrapped(t *testing.T) {
	e := testEngine(t)
	e.SetData(testEntities())

	err := e.Select("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNodeNotFound))
	assert.Contains(t, err.Error(), "missing")
}
