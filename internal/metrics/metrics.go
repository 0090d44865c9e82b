package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Request volume by route and status
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dome_requests_total",
		Help: "Total number of API requests received.",
	}, []string{"route", "status"})

	// Request latency (handler duration)
	RequestDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "dome_request_duration_seconds",
		Help:    "End-to-end handler duration for API requests.",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	})

	// Daily reset outcomes
	ResetRunsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dome_reset_runs_total",
		Help: "Total number of daily reset invocations.",
	})
	ResetFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dome_reset_failures_total",
		Help: "Daily reset invocations that reported at least one error.",
	})
	WinsAwardedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "dome_wins_awarded_total",
		Help: "Daily wins awarded across all participants.",
	})
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		RequestsTotal,
		RequestDurationSeconds,
		ResetRunsTotal,
		ResetFailuresTotal,
		WinsAwardedTotal,
	)
}
