package service

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	sessionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payments_service",
			Subsystem: "checkout",
			Name:      "sessions_created_total",
			Help:      "Total number of successfully created Stripe sessions",
		},
		[]string{"source"},
	)

	sessionsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "payments_service",
			Subsystem: "checkout",
			Name:      "sessions_failed_total",
			Help:      "Total number of failed Stripe session creations",
		},
		[]string{"source"},
	)

	publishErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "payments_service",
			Subsystem: "checkout",
			Name:      "publish_errors_total",
			Help:      "Total number of failed session event publications",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		sessionsCreated,
		sessionsFailed,
		publishErrors,
	)
}
