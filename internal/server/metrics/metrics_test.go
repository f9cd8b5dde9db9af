package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					continue next
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestCollector_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveRequest(http.MethodGet, "/api/contacts/{id}", http.StatusOK, 10*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/api/contacts/{id}", http.StatusOK, 20*time.Millisecond)
	c.ObserveRequest(http.MethodGet, "/api/contacts/{id}", http.StatusNotFound, time.Millisecond)

	require.Equal(t, 2.0, counterValue(t, reg, "contacts_http_requests_total",
		map[string]string{"method": "GET", "route": "/api/contacts/{id}", "status": "200"}))
	require.Equal(t, 1.0, counterValue(t, reg, "contacts_http_requests_total",
		map[string]string{"method": "GET", "route": "/api/contacts/{id}", "status": "404"}))
}

// Запросы мимо маршрутов не плодят метки с сырыми путями
func TestCollector_ObserveRequest_Unmatched(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	require.Equal(t, 1.0, counterValue(t, reg, "contacts_http_requests_total",
		map[string]string{"method": "GET", "route": "unmatched", "status": "404"}))
}

func TestCollector_RecordAuthFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordAuthFailure("expired")

	require.Equal(t, 1.0, counterValue(t, reg, "contacts_auth_failures_total",
		map[string]string{"reason": "expired"}))
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordAuthFailure("missing")

	rr := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "contacts_auth_failures_total")
}
