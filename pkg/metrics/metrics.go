package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// NewRegistry creates a registry with all metrics registered against a
// private prometheus registry, so several engines can coexist in one
// process (and in tests).
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initLayoutMetrics()
	r.initSceneMetrics()
	r.initFrameMetrics()
	return r
}

// Prometheus returns the underlying registry for exposition.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// RecordLayout records one layout computation. trigger is "initial" or
// "update".
func (r *Registry) RecordLayout(trigger string, duration time.Duration, nodes, edges, dropped int) {
	r.LayoutDuration.Observe(duration.Seconds())
	r.LayoutRunsTotal.WithLabelValues(trigger).Inc()
	r.LayoutNodes.Set(float64(nodes))
	r.LayoutEdges.Set(float64(edges))
	r.DroppedEdgesTotal.Add(float64(dropped))
}

// RecordSceneRebuild records a primitive bundle swap.
func (r *Registry) RecordSceneRebuild(vertices, segments int) {
	r.SceneRebuildsTotal.Inc()
	r.SceneVertices.Set(float64(vertices))
	r.SceneSegments.Set(float64(segments))
}

// RecordFrame records one frame step.
func (r *Registry) RecordFrame(duration time.Duration) {
	r.FramesTotal.Inc()
	r.FrameDuration.Observe(duration.Seconds())
}

// RecordPick records a pointer pick by result.
func (r *Registry) RecordPick(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.PicksTotal.WithLabelValues(result).Inc()
}
