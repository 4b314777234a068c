package service

import (
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	resyncDuration  prometheus.Observer
	resyncTotal     prometheus.Counter
	fallbackTotal   prometheus.Counter
}

// NewMetricsService registers the collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	resyncDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_resync_duration_seconds",
		Help:    "Duration of income ledger resyncs",
		Buckets: prometheus.DefBuckets,
	})

	resyncTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_resync_total",
		Help: "Total income ledger resyncs",
	})

	fallbackTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "inspiration_fallback_total",
		Help: "Times the daily inspiration fell back to built-in content",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, resyncDuration, resyncTotal, fallbackTotal, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		resyncDuration:  resyncDuration,
		resyncTotal:     resyncTotal,
		fallbackTotal:   fallbackTotal,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// ObserveLedgerResync records one derived-income rebuild.
func (m *MetricsService) ObserveLedgerResync(duration time.Duration) {
	if m == nil {
		return
	}
	m.resyncDuration.Observe(duration.Seconds())
	m.resyncTotal.Inc()
}

// RecordInspirationFallback counts a degraded inspiration response.
func (m *MetricsService) RecordInspirationFallback() {
	if m == nil {
		return
	}
	m.fallbackTotal.Inc()
}
