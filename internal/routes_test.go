package internal

import (
	"insightd/internal/controllers"
	"insightd/internal/structures"
	"insightd/internal/testutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRoutes(t *testing.T) {
	conf := &structures.Config{}
	api := controllers.NewApiController(conf, &testutil.MockLogger{}, &testutil.MockInsightService{},
		testutil.NewMockCache(), testutil.NewMockMetrics(), &testutil.MockAnalyzer{})

	router := InitRoutes(api, conf)
	routes := router.GetRoutes()

	urls := make([]string, len(routes))
	for i, route := range routes {
		urls[i] = route.Url
	}
	assert.Equal(t, []string{
		"/insights", "/dashboard", "/analysis/image", "/analysis/video",
		"/export/csv", "/export/pdf",
	}, urls)

	mux := http.NewServeMux()
	for _, route := range routes {
		mux.Handle(route.Url, route.Handler)
	}

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/insights", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/insights", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/export/csv", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}
