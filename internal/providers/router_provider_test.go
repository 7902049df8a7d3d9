package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubHandler(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestRouterProvider_FoldsMethodsPerUrl(t *testing.T) {
	router := NewRouterProvider()
	router.Get("/insights", stubHandler("list"))
	router.Post("/insights", stubHandler("create"))
	router.Delete("/insights", stubHandler("delete"))
	router.Get("/dashboard", stubHandler("dash"))

	routes := router.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/insights", routes[0].Url)
	assert.Equal(t, "/dashboard", routes[1].Url)

	cases := map[string]string{
		http.MethodGet:    "list",
		http.MethodPost:   "create",
		http.MethodDelete: "delete",
	}
	for method, want := range cases {
		rr := httptest.NewRecorder()
		routes[0].Handler.ServeHTTP(rr, httptest.NewRequest(method, "/insights", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, want, rr.Body.String())
	}
}

func TestRouterProvider_UnknownMethod(t *testing.T) {
	router := NewRouterProvider()
	router.Get("/insights", stubHandler("list"))

	routes := router.GetRoutes()
	require.Len(t, routes, 1)

	rr := httptest.NewRecorder()
	routes[0].Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/insights", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestRouterProvider_PreservesRegistrationOrder(t *testing.T) {
	router := NewRouterProvider()
	router.Get("/c", stubHandler("c"))
	router.Get("/a", stubHandler("a"))
	router.Get("/b", stubHandler("b"))

	routes := router.GetRoutes()
	require.Len(t, routes, 3)
	assert.Equal(t, "/c", routes[0].Url)
	assert.Equal(t, "/a", routes[1].Url)
	assert.Equal(t, "/b", routes[2].Url)
}
