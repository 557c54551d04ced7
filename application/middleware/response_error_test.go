package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"go-cartmaster/shared/common/errs"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"input validation", errs.InputValidationError("bad body"), 400, "bad body"},
		{"authentication", errs.AuthenticationError("CREDENCIALES_INVALIDAS"), 401, "CREDENCIALES_INVALIDAS"},
		{"not found", errs.ResourceNotFoundError("missing"), 404, "missing"},
		{"conflict", errs.ConflictError("dup"), 409, "dup"},
		{"wrapped conflict", fmt.Errorf("outer: %w", errs.ConflictError("dup")), 409, "dup"},
		{"data integrity", errs.DataIntegrityError("referenced"), 409, "referenced"},
		{"database failure hides detail", errs.DatabaseFailureError("pq: connection refused"), 500, "internal server error"},
		{"plain error", errors.New("boom"), 500, "internal server error"},
		{"fiber error", fiber.ErrMethodNotAllowed, 405, "Method Not Allowed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(ResponseError())
			app.Get("/", func(c fiber.Ctx) error { return tt.err })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var got map[string]string
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tt.wantBody, got["error"])
		})
	}
}

func TestObservabilitySetsRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(Observability())
	app.Get("/ping", func(c fiber.Ctx) error { return c.SendString("pong") })
	app.Get("/health", func(c fiber.Ctx) error { return c.SendString("ok") })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-ID", "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.Header.Get("X-Request-ID"))

	// path ที่ skip ต้องไม่ panic และยังได้ request id
	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}
