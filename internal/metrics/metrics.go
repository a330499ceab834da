// Package metrics holds the Prometheus collectors of the image authorization
// endpoint. HTTP level metrics come from fiberprometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ImageAuthDecisionsTotal counts answered checks by outcome and caller kind.
	ImageAuthDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cheminova_image_auth_decisions_total",
			Help: "Total number of image authorization decisions",
		},
		[]string{"verdict", "principal"},
	)

	// ImageAuthDuration tracks the latency of a full check including the database lookups.
	ImageAuthDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cheminova_image_auth_duration_seconds",
			Help:    "Duration of image authorization checks in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
		[]string{"verdict"},
	)
)

// RecordImageAuth records one answered check. verdict is the response message
// class (ok, unauthorized, not_found, bad_request).
func RecordImageAuth(verdict string, authenticated bool, duration time.Duration) {
	principal := "anonymous"
	if authenticated {
		principal = "user"
	}
	ImageAuthDecisionsTotal.WithLabelValues(verdict, principal).Inc()
	ImageAuthDuration.WithLabelValues(verdict).Observe(duration.Seconds())
}
