package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"herbal/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := middleware.NewMetrics(reg)

	app := fiber.New()
	app.Use(metrics.Handler())
	app.Get("/plants/:id", func(c *fiber.Ctx) error {
		return c.SendString(c.Params("id"))
	})

	for _, path := range []string{"/plants/1", "/plants/2", "/missing"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	count, err := testutil.GatherAndCount(reg, "herbal_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series for the route pattern and one for the miss")

	families, err := reg.Gather()
	require.NoError(t, err)
	var okTotal float64
	for _, mf := range families {
		if mf.GetName() != "herbal_http_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, l := range m.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["route"] == "/plants/:id" && labels["status"] == "200" {
				okTotal = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(2), okTotal)
}

func TestNewMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	middleware.NewMetrics(reg)
	assert.Panics(t, func() { middleware.NewMetrics(reg) })
}
