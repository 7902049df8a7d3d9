package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type recordingMetrics struct {
	countMetrics
	endpoint  string
	status    int
	durations int
}

func (m *recordingMetrics) IncRequestsTotal(endpoint string, status int) {
	m.endpoint = endpoint
	m.status = status
}

func (m *recordingMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.durations++
}

func TestMetricsMiddleware_RecordsStatusAndDuration(t *testing.T) {
	metrics := &recordingMetrics{}
	handler := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/insights", nil))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/insights", metrics.endpoint)
	assert.Equal(t, http.StatusCreated, metrics.status)
	assert.Equal(t, 1, metrics.durations)
}

func TestMetricsMiddleware_DefaultsToOK(t *testing.T) {
	metrics := &recordingMetrics{}
	handler := MetricsMiddleware(metrics, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("implicit 200"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/dashboard", nil))

	assert.Equal(t, http.StatusOK, metrics.status)
}

func TestHttpStatusBucket(t *testing.T) {
	assert.Equal(t, "2xx", httpStatusBucket(201))
	assert.Equal(t, "4xx", httpStatusBucket(428))
	assert.Equal(t, "5xx", httpStatusBucket(502))
	assert.Equal(t, "3xx", httpStatusBucket(302))
	assert.Equal(t, "1xx", httpStatusBucket(100))
}
