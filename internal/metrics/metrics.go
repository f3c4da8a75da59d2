// Package metrics provides Prometheus metrics collection for the sizing service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SizingSolvesTotal tracks sizing solves by terminal outcome
	// (converged, infeasible, error).
	SizingSolvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sizing_solves_total",
			Help: "Total number of sizing solver runs",
		},
		[]string{"mode", "outcome"},
	)

	// SizingSolveDuration tracks sizing solve duration.
	SizingSolveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sizing_solve_duration_seconds",
			Help:    "Sizing solve duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		},
	)

	// SizingIterations tracks the iteration count of converged solves.
	SizingIterations = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sizing_iterations",
			Help:    "Fixed-point iterations needed to converge",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
		},
	)

	// CacheOperationsTotal tracks result cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSolve records metrics for one solver run.
func RecordSolve(mode string, duration time.Duration, outcome string, iterations int) {
	SizingSolveDuration.Observe(duration.Seconds())
	SizingSolvesTotal.WithLabelValues(mode, outcome).Inc()
	if iterations > 0 {
		SizingIterations.Observe(float64(iterations))
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
