package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metrics for the application
type Registry struct {
	// Render metrics
	FramesTotal       prometheus.Counter
	FrameDuration     prometheus.Histogram
	NodesDrawn        prometheus.Gauge
	EdgesDrawn        prometheus.Gauge
	EdgesSkippedTotal prometheus.Counter

	// Interaction metrics
	SelectionChangesTotal prometheus.Counter

	// Data metrics
	SceneRebuildsTotal prometheus.Counter
	SceneNodes         prometheus.Gauge
	SceneEdges         prometheus.Gauge

	registry *prometheus.Registry
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.FramesTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "opsdeck_render_frames_total",
		Help: "Total number of frames rendered",
	})
	r.FrameDuration = promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
		Name:    "opsdeck_render_frame_duration_seconds",
		Help:    "Frame render duration in seconds",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})
	r.NodesDrawn = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "opsdeck_render_nodes_drawn",
		Help: "Nodes drawn in the last frame",
	})
	r.EdgesDrawn = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "opsdeck_render_edges_drawn",
		Help: "Edges drawn in the last frame",
	})
	r.EdgesSkippedTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "opsdeck_render_edges_skipped_total",
		Help: "Edges skipped because an endpoint was missing from the scene",
	})
	r.SelectionChangesTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "opsdeck_interaction_selection_changes_total",
		Help: "Total number of selection changes",
	})
	r.SceneRebuildsTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "opsdeck_scene_rebuilds_total",
		Help: "Total number of scene rebuilds from new input data",
	})
	r.SceneNodes = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "opsdeck_scene_nodes",
		Help: "Nodes in the current scene",
	})
	r.SceneEdges = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "opsdeck_scene_edges",
		Help: "Drawable edges in the current scene",
	})

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// RecordFrame records one rendered frame
func (r *Registry) RecordFrame(duration time.Duration, nodesDrawn, edgesDrawn, edgesSkipped int) {
	r.FramesTotal.Inc()
	r.FrameDuration.Observe(duration.Seconds())
	r.NodesDrawn.Set(float64(nodesDrawn))
	r.EdgesDrawn.Set(float64(edgesDrawn))
	r.EdgesSkippedTotal.Add(float64(edgesSkipped))
}

// RecordSelection records a selection change
func (r *Registry) RecordSelection() {
	r.SelectionChangesTotal.Inc()
}

// RecordSceneRebuild records a scene replacement and its size
func (r *Registry) RecordSceneRebuild(nodes, edges int) {
	r.SceneRebuildsTotal.Inc()
	r.SceneNodes.Set(float64(nodes))
	r.SceneEdges.Set(float64(edges))
}
