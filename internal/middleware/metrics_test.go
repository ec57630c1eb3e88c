package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics("metrics-test"))
	r.Get("/medias/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	counter := httpRequestsTotal.WithLabelValues("metrics-test", http.MethodGet, "/medias/{id}", "404")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/medias/"+id, nil))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d; want 404", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 2 {
		t.Errorf("requests counted = %v; want 2", got)
	}
	if got := testutil.ToFloat64(httpRequestsInFlight.WithLabelValues("metrics-test")); got != 0 {
		t.Errorf("in flight = %v; want 0", got)
	}
}

func TestPrometheusMetrics_OutsideRouter(t *testing.T) {
	h := PrometheusMetrics("metrics-test-bare")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	counter := httpRequestsTotal.WithLabelValues("metrics-test-bare", http.MethodGet, "unknown", "200")
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Errorf("requests counted = %v; want 1", got)
	}
}
