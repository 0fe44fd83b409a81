package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edusystem",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "edusystem",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	PayoutsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edusystem",
		Name:      "payouts_generated_total",
		Help:      "Payout generation outcomes: created or skipped.",
	}, []string{"outcome"})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "edusystem",
		Name:      "domain_events_published_total",
		Help:      "Domain events handed to the queue by type and result.",
	}, []string{"type", "result"})

	NotificationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "edusystem",
		Name:      "notifications_created_total",
		Help:      "Notifications stored, from events or the API.",
	})
)
