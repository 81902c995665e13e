package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestObserveRefund(t *testing.T) {
	m := NewMetrics()

	m.ObserveRefund("FULL", nil)
	m.ObserveRefund("FULL", nil)
	m.ObserveRefund("PARTIAL", errors.New("boom"))

	body := scrape(t, m)
	assert.Contains(t, body, `pocketwise_refunds_total{refund_type="FULL",result="success"} 2`)
	assert.Contains(t, body, `pocketwise_refunds_total{refund_type="PARTIAL",result="error"} 1`)
}

func TestObserveTransactionAndBills(t *testing.T) {
	m := NewMetrics()

	m.ObserveTransaction(nil, 10*time.Millisecond)
	m.IncBillsRecalculated(3)
	m.IncBillSweepFailure()
	m.ObserveStatusRefresh("changed")

	body := scrape(t, m)
	assert.Contains(t, body, `pocketwise_db_transactions_total{result="success"} 1`)
	assert.Contains(t, body, "pocketwise_credit_bills_recalculated_total 3")
	assert.Contains(t, body, "pocketwise_credit_bill_sweep_failures_total 1")
	assert.Contains(t, body, `pocketwise_credit_bill_status_refresh_total{outcome="changed"} 1`)
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	m := NewMetrics()
	m.ObserveHTTPRequest(http.MethodGet, "/health", "200", time.Millisecond)

	body := scrape(t, m)
	assert.Contains(t, body, `pocketwise_http_requests_total{code="200",method="GET",route="/health"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
