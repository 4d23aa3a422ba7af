package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentCountsByRoutePattern(t *testing.T) {
	m := New()
	handler := m.Instrument("POST /gigs/{gig_id}/apply", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	for _, id := range []string{"g-1", "g-2"} {
		rr := httptest.NewRecorder()
		handler(rr, httptest.NewRequest(http.MethodPost, "/gigs/"+id+"/apply", nil))
		require.Equal(t, http.StatusConflict, rr.Code)
	}

	count := testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "POST /gigs/{gig_id}/apply", "409"))
	assert.Equal(t, float64(2), count)
	assert.Equal(t, float64(0), testutil.ToFloat64(m.httpInFlight))
}

func TestRecordLedgerEvent(t *testing.T) {
	m := New()
	m.RecordLedgerEvent("contract_released")
	m.RecordLedgerEvent("contract_released")
	m.RecordLedgerEvent("gig_posted")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.ledgerEvents.WithLabelValues("contract_released")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ledgerEvents.WithLabelValues("gig_posted")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.RecordRateLimited("POST /gigs")

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "talentia_http_rate_limited_total"))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.RecordLedgerEvent("gig_posted")
	called := false
	m.Instrument("GET /gigs", func(http.ResponseWriter, *http.Request) { called = true })(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/gigs", nil))
	assert.True(t, called)
}
