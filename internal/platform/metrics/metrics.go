package metrics

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/srgjo27/venue_booking/internal/core/domain"
)

type Metrics struct {
	registry *prometheus.Registry

	lockWait       *prometheus.HistogramVec
	lockBusy       *prometheus.CounterVec
	bookingOps     *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
	divergentSlots prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		lockWait: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lock_wait_duration_seconds",
				Help:    "Time spent waiting for a keyed lock",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
			},
			[]string{"scope", "outcome"},
		),
		lockBusy: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lock_busy_total",
				Help: "Lock acquisitions that gave up after the wait bound",
			},
			[]string{"scope"},
		),
		bookingOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booking_operations_total",
				Help: "Reservation engine operations by result",
			},
			[]string{"operation", "result"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		divergentSlots: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "slot_availability_divergent",
				Help: "Slots whose availability flag disagrees with their confirmed bookings",
			},
		),
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// TrackLockWait records how long an acquisition of key waited.
func (m *Metrics) TrackLockWait(key string, waited time.Duration, err error) {
	scope := lockScope(key)
	outcome := "acquired"
	if err != nil {
		outcome = ResultLabel(err)
		if errors.Is(err, domain.ErrBusy) {
			m.lockBusy.WithLabelValues(scope).Inc()
		}
	}
	m.lockWait.WithLabelValues(scope, outcome).Observe(waited.Seconds())
}

func (m *Metrics) TrackBookingOperation(operation string, err error) {
	m.bookingOps.WithLabelValues(operation, ResultLabel(err)).Inc()
}

func (m *Metrics) TrackHTTPRequest(method, route, status string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) SetDivergentSlots(n int) {
	m.divergentSlots.Set(float64(n))
}

// ResultLabel maps an error to a low-cardinality label value.
func ResultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, domain.ErrOverlap):
		return "overlap"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrBusy):
		return "busy"
	case errors.Is(err, domain.ErrStorage):
		return "storage_failure"
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	default:
		return "error"
	}
}

func lockScope(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return "other"
}
