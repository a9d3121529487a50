package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilchouksey/unimatch-api/utils/auth"
)

type provisioner struct {
	calls []uint
	err   error
}

func (p *provisioner) EnsureStudent(_ context.Context, id uint, _ string) error {
	p.calls = append(p.calls, id)
	return p.err
}

func newAuthApp(t *testing.T, p StudentProvisioner) (*fiber.App, *auth.JWTManager) {
	t.Helper()
	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Issuer: "unimatch"})
	m := NewAuthMiddleware(jwtManager, p)

	app := fiber.New()
	app.Get("/me", m.Required(), func(c *fiber.Ctx) error {
		id, _ := GetUserID(c)
		return c.JSON(fiber.Map{"id": id})
	})
	app.Get("/admin", m.RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app, jwtManager
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_Required(t *testing.T) {
	p := &provisioner{}
	app, jwtManager := newAuthApp(t, p)

	valid, err := jwtManager.Issue(7, "a@b.co", auth.RoleStudent, time.Hour)
	require.NoError(t, err)
	expired, err := jwtManager.Issue(7, "a@b.co", auth.RoleStudent, -time.Minute)
	require.NoError(t, err)
	foreign, err := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret", Issuer: "elsewhere"}).
		Issue(7, "a@b.co", auth.RoleStudent, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", "").StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", "garbage").StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", expired).StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, doRequest(t, app, "/me", foreign).StatusCode)
	assert.Empty(t, p.calls)

	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/me", valid).StatusCode)
	assert.Equal(t, []uint{7}, p.calls)
}

func TestAuthMiddleware_ProvisioningFailure(t *testing.T) {
	app, jwtManager := newAuthApp(t, &provisioner{err: errors.New("db down")})
	token, err := jwtManager.Issue(7, "a@b.co", auth.RoleStudent, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusServiceUnavailable, doRequest(t, app, "/me", token).StatusCode)
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	app, jwtManager := newAuthApp(t, nil)
	student, err := jwtManager.Issue(7, "a@b.co", auth.RoleStudent, time.Hour)
	require.NoError(t, err)
	admin, err := jwtManager.Issue(1, "ops@b.co", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/admin", student).StatusCode)
	assert.Equal(t, fiber.StatusNoContent, doRequest(t, app, "/admin", admin).StatusCode)
}
