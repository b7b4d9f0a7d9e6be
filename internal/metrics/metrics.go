package metrics

import (
	"strconv"

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

// Business Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsSold,
			Help:      HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsBought,
			Help:      HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsEquipped,
			Help:      HelpTextItemsEquipped,
		},
		[]string{LabelItem},
	)

	ItemsUnequipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameItemsUnequipped,
			Help:      HelpTextItemsUnequipped,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameMoneyEarned,
			Help:      HelpTextMoneyEarned,
		},
		[]string{LabelSource},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameMoneySpent,
			Help:      HelpTextMoneySpent,
		},
	)
)

// Engine Metrics
var (
	EconomyOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEconomyOperations,
			Help:      HelpTextEconomyOperations,
		},
		[]string{LabelOperation, LabelResult},
	)

	EconomyTxRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameEconomyTxRetries,
			Help:      HelpTextEconomyTxRetries,
		},
		[]string{LabelOperation},
	)

	EconomyTxDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      MetricNameEconomyTxDuration,
			Help:      HelpTextEconomyTxDuration,
			Buckets:   prometheus.DefBuckets,
		},
		[]string{LabelOperation},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      MetricNameCatalogCacheLookup,
			Help:      HelpTextCatalogCacheLookup,
		},
		[]string{LabelResult},
	)
)

// ItemLabel formats an item code as a label value.
func ItemLabel(code int) string {
	return strconv.Itoa(code)
}
