package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters
var (
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phaseline_waveform_requests_total",
		Help: "Waveform requests by kind and outcome",
	}, []string{"kind", "outcome"})
	SamplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phaseline_samples_generated_total",
		Help: "Total amplitude samples generated by kind",
	}, []string{"kind"})
	PlotsSavedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "phaseline_plots_saved_total",
		Help: "Total plot images written to the output directory",
	})
)

// Histograms
var (
	RenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "phaseline_render_duration_seconds",
		Help:    "Plot rendering duration in seconds",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})
)

// Outcome labels for RequestsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)
