package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsTotal,
			Help:      HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestDuration,
			Help:      HelpTextHTTPRequestDuration,
			Buckets:   HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      MetricNameHTTPRequestsInFlight,
			Help:      HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventsPublished,
			Help:      HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEventHandlerErrors,
			Help:      HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	Spins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSpins,
			Help:      HelpTextSpins,
		},
		[]string{LabelRarity},
	)

	SpinRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameSpinRejections,
			Help:      HelpTextSpinRejections,
		},
		[]string{LabelReason},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsSold,
			Help:      HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	CurrencyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCurrencyEarned,
			Help:      HelpTextCurrencyEarned,
		},
		[]string{LabelSource},
	)

	CurrencySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCurrencySpent,
			Help:      HelpTextCurrencySpent,
		},
	)

	AccountsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAccountsCreated,
			Help:      HelpTextAccountsCreated,
		},
	)

	AdminActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameAdminActions,
			Help:      HelpTextAdminActions,
		},
		[]string{LabelAction, LabelResult},
	)

	PersistenceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNamePersistenceErrors,
			Help:      HelpTextPersistenceErrors,
		},
		[]string{LabelOperation},
	)
)

// RecordAdminAction counts one admin operation outcome
func RecordAdminAction(action, result string) {
	AdminActions.WithLabelValues(action, result).Inc()
}

// RecordPersistenceError counts one transient store failure
func RecordPersistenceError(op string) {
	PersistenceErrors.WithLabelValues(op).Inc()
}

// RecordSpinRejection counts a spin refused before the debit
func RecordSpinRejection(reason string) {
	SpinRejections.WithLabelValues(reason).Inc()
}
