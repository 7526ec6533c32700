package arquery

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	MetricNameSpace = "arquery"

	endpointData    = "data"
	endpointGraphQL = "graphql"
)

var (
	requestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: MetricNameSpace,
			Name:      "requests_total",
			Help:      "gateway requests by endpoint and http code",
		},
		[]string{"endpoint", "code"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: MetricNameSpace,
			Name:      "request_duration_seconds",
			Help:      "gateway round-trip latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Collectors returns the package metrics for the host to register.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		requestsTotal,
		requestDuration,
	}
}

// RegisterMetrics registers the package metrics on reg, e.g.
// prometheus.DefaultRegisterer.
func RegisterMetrics(reg prometheus.Registerer) error {
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// code 0 means the request never got an answer.
func metricRequest(endpoint string, code int, start time.Time) {
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(code)).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
