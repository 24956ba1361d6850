package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initLayoutMetrics() {
	r.LayoutDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphview_layout_duration_seconds",
			Help:    "Full layout computation duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
	)

	r.LayoutRunsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphview_layout_runs_total",
			Help: "Total number of layout computations",
		},
		[]string{"trigger"},
	)

	r.LayoutNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_layout_nodes",
			Help: "Node count of the most recent layout",
		},
	)

	r.LayoutEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "graphview_layout_edges",
			Help: "Retained edge count of the most recent layout",
		},
	)

	r.DroppedEdgesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_dropped_edges_total",
			Help: "Edges excluded because an endpoint id was absent",
		},
	)
}
