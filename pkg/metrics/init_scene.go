package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initSceneMetrics() {
	r.SceneRebuildsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_scene_rebuilds_total",
			Help: "Total number of primitive bundle rebuilds",
		},
	)

	r.SceneVertices = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_scene_vertices",
			Help: "Point vertices in the live bundle",
		},
	)

	r.SceneSegments = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_scene_segments",
			Help: "Line segments in the live bundle",
		},
	)
}
