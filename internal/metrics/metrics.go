package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const namespace = "catalog_service"

var (
	httpBuckets     = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
	queryBuckets    = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	upstreamBuckets = []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
)

// Metrics holds the collectors of the api and web binaries. Both register the
// same set so dashboards can share queries.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// connection pool, fed by database.StartDBStatsCollector
	DBConnectionsOpen        prometheus.Gauge
	DBConnectionsInUse       prometheus.Gauge
	DBConnectionsIdle        prometheus.Gauge
	DBConnectionsMax         prometheus.Gauge
	DBConnectionWaitTotal    prometheus.Gauge
	DBConnectionWaitDuration prometheus.Gauge
	DBQueryDuration          *prometheus.HistogramVec
	DBQueryErrors            *prometheus.CounterVec

	// catalog API calls made by the web frontend
	ExternalAPIRequestDuration *prometheus.HistogramVec
	ExternalAPIRequestsTotal   *prometheus.CounterVec
	ExternalAPIErrors          *prometheus.CounterVec

	EntitiesTotal      *prometheus.GaugeVec
	EntityCreatedTotal *prometheus.CounterVec
	StatsRefreshTotal  *prometheus.CounterVec

	logger *zap.Logger
}

// New registers with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, nil)
}

func NewWithLogger(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry registers every collector with registerer. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration panics.
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := builder{promauto.With(registerer)}

	return &Metrics{
		HTTPRequestsTotal: f.counters("http_requests_total",
			"Total number of HTTP requests", "method", "endpoint", "status"),
		HTTPRequestDuration: f.histograms("http_request_duration_seconds",
			"HTTP request duration in seconds", httpBuckets, "method", "endpoint"),

		DBConnectionsOpen: f.gauge("db_connections_open",
			"Current number of open database connections"),
		DBConnectionsInUse: f.gauge("db_connections_in_use",
			"Current number of in-use database connections"),
		DBConnectionsIdle: f.gauge("db_connections_idle",
			"Current number of idle database connections"),
		DBConnectionsMax: f.gauge("db_connections_max",
			"Maximum number of open database connections configured"),
		DBConnectionWaitTotal: f.gauge("db_connection_waits",
			"Cumulative number of waits for a database connection reported by the pool"),
		DBConnectionWaitDuration: f.gauge("db_connection_wait_duration_seconds",
			"Cumulative time spent waiting for database connections reported by the pool"),
		DBQueryDuration: f.histograms("db_query_duration_seconds",
			"Database query duration in seconds", queryBuckets, "operation", "table"),
		DBQueryErrors: f.counters("db_query_errors_total",
			"Total number of database query errors", "operation", "table"),

		ExternalAPIRequestDuration: f.histograms("external_api_request_duration_seconds",
			"Catalog API request duration in seconds, measured by the web frontend", upstreamBuckets, "endpoint", "status"),
		ExternalAPIRequestsTotal: f.counters("external_api_requests_total",
			"Total number of catalog API requests made by the web frontend", "endpoint", "method", "status"),
		ExternalAPIErrors: f.counters("external_api_errors_total",
			"Total number of failed catalog API requests made by the web frontend", "endpoint", "error_type"),

		EntitiesTotal: f.gauges("entities_total",
			"Number of stored catalog rows per entity", "entity"),
		EntityCreatedTotal: f.counters("entity_created_total",
			"Total number of catalog entity creation events", "entity"),
		StatsRefreshTotal: f.counters("stats_refresh_total",
			"Total number of catalog statistics refresh runs", "result"),

		logger: logger,
	}
}

// builder applies the namespace to every collector it creates
type builder struct {
	factory promauto.Factory
}

func (b builder) counters(name, help string, labels ...string) *prometheus.CounterVec {
	return b.factory.NewCounterVec(prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}, labels)
}

func (b builder) gauge(name, help string) prometheus.Gauge {
	return b.factory.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
}

func (b builder) gauges(name, help string, labels ...string) *prometheus.GaugeVec {
	return b.factory.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, labels)
}

func (b builder) histograms(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return b.factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}, labels)
}

// safeExecute keeps a misbehaving collector from taking down a request
func (m *Metrics) safeExecute(operation string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
