package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initFrameMetrics() {
	r.FramesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "graphview_frames_total",
			Help: "Total number of rendered frames",
		},
	)

	r.FrameDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "graphview_frame_duration_seconds",
			Help:    "Frame step duration in seconds",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.016, 0.033, 0.1, 0.5},
		},
	)

	r.PicksTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphview_picks_total",
			Help: "Pointer picks by result",
		},
		[]string{"result"},
	)
}
