package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesInstruments(t *testing.T) {
	c := New()
	c.RecordBackendCall(http.MethodGet, 200, 15*time.Millisecond)
	c.RecordGuardRedirect()

	w := httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `vitrina_backend_requests_total{method="GET",status="200"} 1`)
	assert.Contains(t, body, "vitrina_route_guard_redirects_total 1")
}

func TestGinMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c := New()

	r := gin.New()
	r.Use(GinMiddleware(c))
	r.GET("/companies/:id", func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/companies/42", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	c.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(),
		`vitrina_http_requests_total{method="GET",route="/companies/:id",status="200"} 1`)
}
