package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFail(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		message     string
		wantCode    string
		wantMessage string
	}{
		{name: "default message", status: fiber.StatusNotFound, wantCode: "NOT_FOUND", wantMessage: "Resource not found"},
		{name: "custom message", status: fiber.StatusConflict, message: "Already applied", wantCode: "CONFLICT", wantMessage: "Already applied"},
		{name: "unmapped status", status: fiber.StatusRequestEntityTooLarge, message: "Request Entity Too Large", wantCode: "HTTP_ERROR", wantMessage: "Request Entity Too Large"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return Fail(c, tc.status, tc.message, nil)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantCode, body.Error.Code)
			assert.Equal(t, tc.wantMessage, body.Error.Message)
		})
	}
}
