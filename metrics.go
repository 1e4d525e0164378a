package directions

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	routeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "directions_route_requests_total",
		Help: "Total number of route requests issued to the routes service",
	}, []string{"result"})

	routeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "directions_route_request_duration_seconds",
		Help:    "Duration of route requests including response mapping",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~20s
	}, []string{"result"})
)

func observeRouteRequest(duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}

	routeRequestsTotal.WithLabelValues(result).Inc()
	routeRequestDuration.WithLabelValues(result).Observe(duration.Seconds())
}
