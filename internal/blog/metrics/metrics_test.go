package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin(true)
	c.RecordLogin(true)
	c.RecordLogin(false)
	c.RecordDecision("account.delete", false)
	c.RecordAccountCreated("superuser")
	c.RecordPostWrite("create")

	require.Equal(t, 2.0, testutil.ToFloat64(c.logins.WithLabelValues("success")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.logins.WithLabelValues("failure")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.decision.WithLabelValues("account.delete", "deny")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.accounts.WithLabelValues("superuser")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.posts.WithLabelValues("create")))
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLogin(true)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `inkwell_logins_total{outcome="success"} 1`)
}

func TestNoop_SatisfiesRecorder(t *testing.T) {
	var r Recorder = Noop{}
	r.RecordLogin(true)
	r.RecordDecision("x", true)
	r.RecordAccountCreated("normal")
	r.RecordPostWrite("delete")
}
