package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailed  = "failed"
)

// Metrics holds the ledger counters on a private registry.
type Metrics struct {
	registry          *prometheus.Registry
	ClientsRegistered prometheus.Counter
	AccountsOpened    prometheus.Counter
	Transactions      *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		ClientsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Name: "bank_ledger_clients_registered_total",
			Help: "Total number of clients registered",
		}),
		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "bank_ledger_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		Transactions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bank_ledger_transactions_total",
			Help: "Transactions submitted by kind and outcome",
		}, []string{"kind", "outcome"}),
	}
}

func (m *Metrics) IncrementClientsRegistered() {
	if m == nil {
		return
	}
	m.ClientsRegistered.Inc()
}

func (m *Metrics) IncrementAccountsOpened() {
	if m == nil {
		return
	}
	m.AccountsOpened.Inc()
}

func (m *Metrics) ObserveTransaction(kind string, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailed
	}
	m.Transactions.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
