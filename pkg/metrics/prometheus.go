package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	estimatesTotal *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	lastEstimate   *prometheus.GaugeVec
	latency        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		estimatesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricepull_estimates_total",
				Help: "Total number of price estimates produced",
			},
			[]string{"product"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricepull_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastEstimate: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pricepull_last_estimated_price",
				Help: "Last estimated total price for a product",
			},
			[]string{"product"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricepull_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordEstimate records one produced estimate for a product.
func (r *Recorder) RecordEstimate(productID string) {
	r.estimatesTotal.WithLabelValues(productID).Inc()
}

// RecordEstimatedPrice records the last estimated total price for a product.
func (r *Recorder) RecordEstimatedPrice(productID string, price float64) {
	r.lastEstimate.WithLabelValues(productID).Set(price)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
