package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Layout Metrics
	LayoutDuration    prometheus.Histogram
	LayoutRunsTotal   *prometheus.CounterVec
	LayoutNodes       prometheus.Gauge
	LayoutEdges       prometheus.Gauge
	DroppedEdgesTotal prometheus.Counter

	// Scene Metrics
	SceneRebuildsTotal prometheus.Counter
	SceneVertices      prometheus.Gauge
	SceneSegments      prometheus.Gauge

	// Frame / Interaction Metrics
	FramesTotal   prometheus.Counter
	FrameDuration prometheus.Histogram
	PicksTotal    *prometheus.CounterVec

	registry *prometheus.Registry
}
