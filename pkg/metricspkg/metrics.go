// Package metricspkg collects ledger transaction metrics.
package metricspkg

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Recorder defines the interface for collecting transaction metrics.
//
//go:generate mockgen -source metrics.go -destination metrics_mock.go -package metricspkg
type Recorder interface {
	// RecordTransaction counts one transaction attempt of the given kind and outcome.
	RecordTransaction(kind, outcome string)
	// RecordBranchBalance stores the total balance held by a branch after an accepted transaction.
	RecordBranchBalance(branch string, balance decimal.Decimal)
}

// NopRecorder discards all metrics.
type NopRecorder struct{}

// RecordTransaction does nothing.
func (NopRecorder) RecordTransaction(string, string) {}

// RecordBranchBalance does nothing.
func (NopRecorder) RecordBranchBalance(string, decimal.Decimal) {}

// PrometheusRecorder implements Recorder for Prometheus.
type PrometheusRecorder struct {
	transactions *prometheus.CounterVec
	balances     *prometheus.GaugeVec
}

// NewPrometheusRecorder creates the collectors under namespace and registers them with reg.
func NewPrometheusRecorder(namespace string, reg prometheus.Registerer) (*PrometheusRecorder, error) {
	r := &PrometheusRecorder{
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transactions_total",
				Help:      "Total number of transaction attempts per kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		balances: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "branch_balance",
				Help:      "Sum of the balances of all accounts of a branch",
			},
			[]string{"branch"},
		),
	}

	for _, c := range []prometheus.Collector{r.transactions, r.balances} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// RecordTransaction increments the transaction counter.
func (r *PrometheusRecorder) RecordTransaction(kind, outcome string) {
	r.transactions.WithLabelValues(kind, outcome).Inc()
}

// RecordBranchBalance sets the balance gauge of branch.
func (r *PrometheusRecorder) RecordBranchBalance(branch string, balance decimal.Decimal) {
	r.balances.WithLabelValues(branch).Set(balance.InexactFloat64())
}
