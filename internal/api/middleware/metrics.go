package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request metrics are labelled with the chi route pattern, not the raw path,
// so /customers/C001 and /customers/C002 land in the same series.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "insurance_office",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Requests served, by route pattern and status code.",
	}, []string{"method", "route", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "insurance_office",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Request latency in seconds, by route pattern and status code.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})

	requestsInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "insurance_office",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Requests currently being served.",
	})
)

func MetricsMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestsInFlight.Inc()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				requestsInFlight.Dec()

				code := strconv.Itoa(ww.Status())
				route := chi.RouteContext(r.Context()).RoutePattern()

				requestsTotal.WithLabelValues(r.Method, route, code).Inc()
				requestDuration.WithLabelValues(r.Method, route, code).Observe(time.Since(start).Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
