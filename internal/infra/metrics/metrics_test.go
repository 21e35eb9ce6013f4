//go:build unit

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordWebhook(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordWebhook("processed")
	c.RecordWebhook("processed")
	c.RecordWebhook("invalid_signature")

	assert.Equal(t, 2.0, testutil.ToFloat64(c.webhookDeliveries.WithLabelValues("processed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.webhookDeliveries.WithLabelValues("invalid_signature")))
}

func TestCollector_RecordReconciliation(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordReconciliation("square", true)
	c.RecordReconciliation("square", false)
	c.RecordReconciliation("square", false)
	c.RecordReconciliation("manual", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.reconciliations.WithLabelValues("square", "created")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.reconciliations.WithLabelValues("square", "existing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.reconciliations.WithLabelValues("manual", "created")))
}

func TestCollector_OrderFetchAndCache(t *testing.T) {
	c := NewCollector(prometheus.NewRegistry())

	c.RecordOrderFetch(true)
	c.RecordOrderFetch(false)
	c.RecordCacheLookup("blog", true)
	c.RecordCacheLookup("blog", false)
	c.RecordCacheLookup("blog", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.orderFetches.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.orderFetches.WithLabelValues("error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.cacheLookups.WithLabelValues("blog", "miss")))
}

func TestCollector_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg)
	assert.Panics(t, func() { NewCollector(reg) })
}

func TestHandler_ExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordHTTPRequest(http.MethodPost, "/api/webhooks/square", 200, 15*time.Millisecond)
	c.RecordHTTPRequest(http.MethodGet, "", 404, time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `bikepacking_http_requests_total{method="POST",route="/api/webhooks/square",status="200"} 1`))
	assert.True(t, strings.Contains(text, `route="unmatched"`))
	assert.True(t, strings.Contains(text, "bikepacking_http_request_duration_seconds_bucket"))
}
