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

// Business Metrics
var (
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePurchasesTotal,
			Help: HelpTextPurchasesTotal,
		},
		[]string{LabelRarity},
	)

	CheckoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCheckoutsTotal,
			Help: HelpTextCheckoutsTotal,
		},
		[]string{LabelOutcome},
	)

	WithdrawalsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWithdrawalsTotal,
			Help: HelpTextWithdrawalsTotal,
		},
	)

	CommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsTotal,
			Help: HelpTextCommandsTotal,
		},
		[]string{LabelCommand},
	)
)
