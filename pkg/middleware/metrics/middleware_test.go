package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectCountsRequests(t *testing.T) {
	h := Collect(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	before := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("201", "/collect-test", http.MethodPost))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/collect-test", nil))
	after := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("201", "/collect-test", http.MethodPost))

	assert.Equal(t, before+1, after)
}

func TestCollectSkipsPaths(t *testing.T) {
	AddMetricsSkipPaths("/skip-me")
	h := Collect(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	for _, p := range []string{"/metrics", "/ping", "/skip-me"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
		assert.Zero(t, testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", p, http.MethodGet)), p)
	}
}

func TestProvideMetricsServesRegistry(t *testing.T) {
	LifecycleEvents.WithLabelValues("metrics.test").Inc()

	rec := httptest.NewRecorder()
	ProvideMetrics().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `worker_lifecycle_events_total{event="metrics.test"}`)
}

func TestRoutePatternLabel(t *testing.T) {
	SetPathNormalizer(RoutePattern)
	t.Cleanup(func() { SetPathNormalizer(func(r *http.Request) string { return r.URL.Path }) })

	r := chi.NewRouter()
	r.Use(Collect(nil))
	r.Get("/items/{id}", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	label := func(uri, code string) float64 {
		return testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues(code, uri, http.MethodGet))
	}
	before := label("/items/{id}", "200")
	beforeMiss := label("unmatched", "404")

	for _, p := range []string{"/items/1", "/items/2", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	assert.Equal(t, before+2, label("/items/{id}", "200"))
	assert.Equal(t, beforeMiss+1, label("unmatched", "404"))
	assert.Zero(t, label("/items/1", "200"))
}
