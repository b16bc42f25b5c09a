package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quickcommerce/crm-portal/internal/observability"
	apperrors "github.com/quickcommerce/crm-portal/pkg/util"
)

func newMiddlewareApp(t *testing.T) (*fiber.App, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)
	return app, metrics
}

func TestMiddleware_PanicBecomesInternalError(t *testing.T) {
	app, metrics := newMiddlewareApp(t)
	app.Get("/boom", func(*fiber.Ctx) error {
		panic("unreachable state")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "INTERNAL_ERROR", errObj["code"])
	assert.Equal(t, "internal server error", errObj["message"])
	assert.EqualValues(t, 1, metrics.ErrorTotal("/boom", http.MethodGet, "INTERNAL_ERROR"))
}

func TestMiddleware_ValidationDetailsPassThrough(t *testing.T) {
	app, _ := newMiddlewareApp(t)
	app.Get("/bad", func(*fiber.Ctx) error {
		return apperrors.NewValidationError("password too short", map[string]any{"min_length": 8})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	errObj := body["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errObj["code"])
	details := errObj["details"].(map[string]any)
	assert.Equal(t, float64(8), details["min_length"])
}
