package httputil

import (
	"net/http/httptest"
	"testing"

	"go-cartmaster/shared/common/errs"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamIDAndQueryBool(t *testing.T) {
	app := fiber.New()
	app.Get("/items/:id", func(c fiber.Ctx) error {
		id, err := ParamID(c, "id")
		if err != nil {
			return c.Status(errs.GetHTTPStatus(err)).SendString(err.Error())
		}
		flag, err := QueryBool(c, "flag", true)
		if err != nil {
			return c.Status(errs.GetHTTPStatus(err)).SendString(err.Error())
		}
		return c.JSON(fiber.Map{"id": id, "flag": flag})
	})

	tests := []struct {
		target string
		status int
	}{
		{"/items/42", fiber.StatusOK},
		{"/items/42?flag=false", fiber.StatusOK},
		{"/items/abc", fiber.StatusBadRequest},
		{"/items/0", fiber.StatusOK},
		{"/items/-3", fiber.StatusOK},
		{"/items/99999999999999999999", fiber.StatusBadRequest},
		{"/items/42?flag=maybe", fiber.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}
