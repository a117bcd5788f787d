package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intakeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trymeup_intake_total",
		Help: "Image intake attempts by role and outcome.",
	}, []string{"role", "outcome"})

	generationTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trymeup_generation_total",
		Help: "Try-on generation requests by outcome.",
	}, []string{"outcome"})

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "trymeup_generation_duration_seconds",
		Help:    "Latency of the remote generation call.",
		Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80, 160},
	})

	feedbackTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trymeup_feedback_total",
		Help: "Feedback requests by outcome. Failures are suppressed.",
	}, []string{"outcome"})

	favoritesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trymeup_favorites_saved_total",
		Help: "Favorites added across all sessions.",
	})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "trymeup_active_sessions",
		Help: "Sessions currently held by the manager.",
	})
)
