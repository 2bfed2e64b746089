package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsMiddleware(t *testing.T) {

	requestsTotal.Reset()
	requestDuration.Reset()

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r := chi.NewRouter()
	r.Use(MetricsMiddleware())
	r.Get("/customers/{customerID}", testHandler)

	req := httptest.NewRequest(http.MethodGet, "/customers/C001", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status code %d, got %d", http.StatusOK, rec.Code)
	}

	// The series carries the route pattern, not the concrete path.
	expectedTotal := `
		# HELP insurance_office_http_requests_total Requests served, by route pattern and status code.
		# TYPE insurance_office_http_requests_total counter
		insurance_office_http_requests_total{code="200",method="GET",route="/customers/{customerID}"} 1
	`
	if err := testutil.CollectAndCompare(requestsTotal, strings.NewReader(expectedTotal)); err != nil {
		t.Errorf("unexpected metrics for requests_total: %v", err)
	}

	expectedInFlight := `
		# HELP insurance_office_http_requests_in_flight Requests currently being served.
		# TYPE insurance_office_http_requests_in_flight gauge
		insurance_office_http_requests_in_flight 0
	`
	if err := testutil.CollectAndCompare(requestsInFlight, strings.NewReader(expectedInFlight)); err != nil {
		t.Errorf("unexpected metrics for requests_in_flight: %v", err)
	}
}
