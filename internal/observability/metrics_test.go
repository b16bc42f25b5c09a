package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetrics_Counters(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/dashboard", http.MethodGet, http.StatusOK, 3*time.Millisecond)
	metrics.RecordRequest("/dashboard", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	metrics.RecordError("/login", http.MethodPost, "UNAUTHORIZED")

	assert.EqualValues(t, 2, metrics.RequestTotal("/dashboard", http.MethodGet, http.StatusOK))
	assert.Equal(t, 8*time.Millisecond, metrics.RequestLatency("/dashboard", http.MethodGet, http.StatusOK))
	assert.Zero(t, metrics.RequestTotal("/dashboard", http.MethodGet, http.StatusNotFound))
	assert.EqualValues(t, 1, metrics.ErrorTotal("/login", http.MethodPost, "UNAUTHORIZED"))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/", http.MethodGet, http.StatusOK, 0)
	metrics.RecordError("/", http.MethodGet, "X")
	assert.Zero(t, metrics.RequestTotal("/", http.MethodGet, http.StatusOK))
	assert.Zero(t, metrics.RequestLatency("/", http.MethodGet, http.StatusOK))
	assert.Zero(t, metrics.ErrorTotal("/", http.MethodGet, "X"))
}

func TestRequestLogger_RecordsRequests(t *testing.T) {
	metrics := NewMetrics()
	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.EqualValues(t, 1, metrics.RequestTotal("/ping", http.MethodGet, http.StatusOK))
	assert.Positive(t, metrics.RequestLatency("/ping", http.MethodGet, http.StatusOK))
}
