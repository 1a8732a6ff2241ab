package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := metrics.New()

	m.OrderCreated()
	m.OrderCreated()
	m.OrderTransitioned("PENDING", "CONFIRMED")
	m.SetActiveOrders("PENDING", 4)
	m.SetActiveOrders("PENDING", 3)

	assert.InDelta(t, 2, testutil.ToFloat64(m.OrdersCreated), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.OrderTransitions.WithLabelValues("PENDING", "CONFIRMED")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ActiveOrders.WithLabelValues("PENDING")), 0)
}

func TestMetrics_MiddlewareUsesRoutePattern(t *testing.T) {
	m := metrics.New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/orders/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(m.RequestTotal.WithLabelValues(http.MethodGet, "/api/v1/orders/:id", "204")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.OrderCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "canteen_orders_created_total 1"), body)
	assert.Contains(t, body, "go_goroutines")
}
