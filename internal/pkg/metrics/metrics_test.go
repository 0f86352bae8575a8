package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveProvisioning(t *testing.T) {
	m := New()
	m.ObserveProvisioning("barbershop", 10*time.Millisecond, nil)
	m.ObserveProvisioning("barbershop", 10*time.Millisecond, errors.New("boom"))
	m.ObserveProvisioning("barbershop", 10*time.Millisecond, nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.provisioning.WithLabelValues("barbershop", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.provisioning.WithLabelValues("barbershop", OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveMutation("create_item", nil)
		m.ObserveProvisioning("x", time.Second, nil)
	})
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.GinMiddleware())
	r.GET("/v1/stores/:storeID/items", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/stores/s1/items", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/v1/stores/:storeID/items", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, w.Body.String(), "catalog_http_requests_total")
}
