package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bikepacking"

// Collector holds the Prometheus metrics of the service.
type Collector struct {
	webhookDeliveries *prometheus.CounterVec
	reconciliations   *prometheus.CounterVec
	orderFetches      *prometheus.CounterVec
	cacheLookups      *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		webhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Payment webhook deliveries by outcome.",
		}, []string{"outcome"}),
		reconciliations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_reconciliations_total",
			Help:      "Purchase reconciliations by provider and result.",
		}, []string{"provider", "result"}),
		orderFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "square_order_fetches_total",
			Help:      "Secondary order lookups made while normalizing payments.",
		}, []string{"result"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Cache lookups by cache name and result.",
		}, []string{"cache", "result"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.webhookDeliveries,
		c.reconciliations,
		c.orderFetches,
		c.cacheLookups,
		c.httpRequests,
		c.httpLatency,
	)
	return c
}

func (c *Collector) RecordWebhook(outcome string) {
	c.webhookDeliveries.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordReconciliation(provider string, created bool) {
	result := "existing"
	if created {
		result = "created"
	}
	c.reconciliations.WithLabelValues(provider, result).Inc()
}

func (c *Collector) RecordOrderFetch(ok bool) {
	result := "error"
	if ok {
		result = "ok"
	}
	c.orderFetches.WithLabelValues(result).Inc()
}

func (c *Collector) RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.cacheLookups.WithLabelValues(cache, result).Inc()
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, d time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(d.Seconds())
}

// Handler serves the scrape endpoint.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
