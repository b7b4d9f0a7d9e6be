package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the service
const Namespace = "itemsim"

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameItemsSold          = "items_sold_total"
	MetricNameItemsBought        = "items_bought_total"
	MetricNameItemsEquipped      = "items_equipped_total"
	MetricNameItemsUnequipped    = "items_unequipped_total"
	MetricNameMoneyEarned        = "money_earned_total"
	MetricNameMoneySpent         = "money_spent_total"
	MetricNameEconomyOperations  = "economy_operations_total"
	MetricNameEconomyTxRetries   = "economy_tx_retries_total"
	MetricNameEconomyTxDuration  = "economy_tx_duration_seconds"
	MetricNameCatalogCacheLookup = "catalog_cache_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextItemsSold          = "Total number of item units sold"
	HelpTextItemsBought        = "Total number of item units bought"
	HelpTextItemsEquipped      = "Total number of equip operations"
	HelpTextItemsUnequipped    = "Total number of unequip operations"
	HelpTextMoneyEarned        = "Total money credited to characters"
	HelpTextMoneySpent         = "Total money spent buying items"
	HelpTextEconomyOperations  = "Economy operations by outcome"
	HelpTextEconomyTxRetries   = "Economy transactions retried after a lock conflict"
	HelpTextEconomyTxDuration  = "Economy operation latency in seconds, including retries"
	HelpTextCatalogCacheLookup = "Catalog cache lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelItem      = "item"
	LabelSource    = "source"
	LabelOperation = "operation"
	LabelResult    = "result"
)

// Label values
const (
	SourceSale   = "sale"
	SourceIncome = "income"

	ResultSuccess = "success"
	ResultHit     = "hit"
	ResultMiss    = "miss"

	// UnmatchedRoute labels requests that matched no route
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
