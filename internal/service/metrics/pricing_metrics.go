package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	EstimateLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pricepull",
			Subsystem: "pricing",
			Name:      "latency_seconds",
			Help:      "Latency of pricing endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	EstimateErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pricepull",
			Subsystem: "pricing",
			Name:      "errors_total",
			Help:      "Errors by pricing endpoint",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(EstimateLatency, EstimateErrors)
	})
}
