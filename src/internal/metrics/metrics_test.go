package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveTransactionByOutcome(t *testing.T) {
	m := New()

	m.ObserveTransaction("DEPOSIT", nil)
	m.ObserveTransaction("DEPOSIT", nil)
	m.ObserveTransaction("WITHDRAWAL", errors.New("denied"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Transactions.WithLabelValues("DEPOSIT", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transactions.WithLabelValues("WITHDRAWAL", OutcomeFailed)))
}

func TestNewUsesIndependentRegistries(t *testing.T) {
	first := New()
	second := New()

	first.IncrementClientsRegistered()

	assert.Equal(t, 1.0, testutil.ToFloat64(first.ClientsRegistered))
	assert.Equal(t, 0.0, testutil.ToFloat64(second.ClientsRegistered))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.IncrementAccountsOpened()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "bank_ledger_accounts_opened_total 1"))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.IncrementClientsRegistered()
	m.IncrementAccountsOpened()
	m.ObserveTransaction("DEPOSIT", nil)
}
