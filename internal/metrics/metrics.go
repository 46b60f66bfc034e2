package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Verification Metrics
var (
	VerificationAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVerificationAttempts,
			Help: HelpTextVerificationAttempts,
		},
		[]string{LabelOutcome},
	)

	RoleMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRoleMutations,
			Help: HelpTextRoleMutations,
		},
		[]string{LabelOp, LabelResult},
	)

	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreWrites,
			Help: HelpTextStoreWrites,
		},
		[]string{LabelBackend, LabelResult},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameUpstreamRequests,
			Help: HelpTextUpstreamRequests,
		},
		[]string{LabelService, LabelResult},
	)

	Renders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRenders,
			Help: HelpTextRenders,
		},
		[]string{LabelKind, LabelResult},
	)

	CommandsReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsReceived,
			Help: HelpTextCommandsReceived,
		},
		[]string{LabelCommand},
	)
)

// Result maps an error to the success/failure label value
func Result(err error) string {
	if err != nil {
		return ResultFailure
	}
	return ResultSuccess
}
