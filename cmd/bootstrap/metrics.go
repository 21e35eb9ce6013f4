package bootstrap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"

	"bikepacking-api/internal/infra/metrics"
	"bikepacking-api/internal/usecase/commands"
	"bikepacking-api/internal/usecase/queries"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewRegistry,
		func(r *prometheus.Registry) prometheus.Registerer { return r },
		func(r *prometheus.Registry) prometheus.Gatherer { return r },
		metrics.NewCollector,
		func(c *metrics.Collector) commands.Metrics { return c },
		func(c *metrics.Collector) queries.CacheMetrics { return c },
	),
)

// NewRegistry is private to the process so tests can build several apps side by side.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
