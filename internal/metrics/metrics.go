package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	metricPrefix = "pocketwise_"

	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics holds the collectors of the service. Each instance owns its
// registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	txTotal   *prometheus.CounterVec
	txLatency prometheus.Histogram

	refundsTotal      *prometheus.CounterVec
	billsRecalculated prometheus.Counter
	billSweepFailures prometheus.Counter
	statusRefreshed   *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "code"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		txTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "db_transactions_total",
				Help: "Total database transactions by result",
			},
			[]string{"result"},
		),
		txLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "db_transaction_duration_seconds",
				Help:    "Database transaction latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		refundsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "refunds_total",
				Help: "Total refunds by type and result",
			},
			[]string{"refund_type", "result"},
		),
		billsRecalculated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "credit_bills_recalculated_total",
				Help: "Total bill recalculations",
			},
		),
		billSweepFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "credit_bill_sweep_failures_total",
				Help: "Post refund bill sweeps that gave up",
			},
		),
		statusRefreshed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "credit_bill_status_refresh_total",
				Help: "Bills visited by status refreshes by outcome",
			},
			[]string{"outcome"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpLatency,
		m.txTotal,
		m.txLatency,
		m.refundsTotal,
		m.billsRecalculated,
		m.billSweepFailures,
		m.statusRefreshed,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route, code string, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(method, route, code).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveTransaction(err error, elapsed time.Duration) {
	m.txTotal.WithLabelValues(result(err)).Inc()
	m.txLatency.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveRefund(refundType string, err error) {
	m.refundsTotal.WithLabelValues(refundType, result(err)).Inc()
}

func (m *Metrics) IncBillsRecalculated(n int) {
	m.billsRecalculated.Add(float64(n))
}

func (m *Metrics) IncBillSweepFailure() {
	m.billSweepFailures.Inc()
}

// ObserveStatusRefresh records one visited bill. outcome is changed,
// unchanged or failed.
func (m *Metrics) ObserveStatusRefresh(outcome string) {
	m.statusRefreshed.WithLabelValues(outcome).Inc()
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
