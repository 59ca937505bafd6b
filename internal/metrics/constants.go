package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "fntd"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSpins             = "spins_total"
	MetricNameSpinRejections    = "spin_rejections_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameCurrencyEarned    = "currency_earned_total"
	MetricNameCurrencySpent     = "currency_spent_total"
	MetricNameAccountsCreated   = "accounts_created_total"
	MetricNameAdminActions      = "admin_actions_total"
	MetricNamePersistenceErrors = "persistence_errors_total"
)

// Admin cache metric names
const (
	MetricNameAdminCacheHits   = "admin_cache_hits_total"
	MetricNameAdminCacheMisses = "admin_cache_misses_total"
	MetricNameAdminCacheSize   = "admin_cache_entries"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"

	HelpTextEventsPublished    = "Total number of events delivered to the metrics collector"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextSpins             = "Completed roulette spins by rarity"
	HelpTextSpinRejections    = "Roulette spins rejected before any mutation, by reason"
	HelpTextItemsSold         = "Items sold by item"
	HelpTextCurrencyEarned    = "Currency credited to accounts by source"
	HelpTextCurrencySpent     = "Currency debited for roulette spins"
	HelpTextAccountsCreated   = "Accounts created on first contact"
	HelpTextAdminActions      = "Admin operations by action and result"
	HelpTextPersistenceErrors = "Transient persistence failures by operation"

	HelpTextAdminCacheHits   = "Admin allow-list decisions served from cache"
	HelpTextAdminCacheMisses = "Admin allow-list decisions that went to the store"
	HelpTextAdminCacheSize   = "Admin allow-list decisions currently cached"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelRarity    = "rarity"
	LabelReason    = "reason"
	LabelItem      = "item"
	LabelSource    = "source"
	LabelAction    = "action"
	LabelResult    = "result"
	LabelOperation = "operation"
)

// Label values
const (
	SourceSale       = "sale"
	SourceAdminGrant = "admin_grant"

	ResultSuccess = "success"
	ResultDenied  = "denied"
	ResultError   = "error"

	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)
