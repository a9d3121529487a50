package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sahilchouksey/unimatch-api/database"
)

// HealthChecker is an optional dependency probed by the health endpoint
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HandleCheckHealth answers GET /ping. The cache is optional; a failing
// cache degrades the status but does not fail the probe.
func HandleCheckHealth(c *fiber.Ctx, store database.Storage, cache HealthChecker) error {
	checks := fiber.Map{"database": "ok"}
	status := fiber.StatusOK

	if err := store.HealthCheck(); err != nil {
		checks["database"] = err.Error()
		status = fiber.StatusServiceUnavailable
	}

	if cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := cache.HealthCheck(ctx); err != nil {
			checks["cache"] = err.Error()
		} else {
			checks["cache"] = "ok"
		}
	}

	state := "ok"
	if status != fiber.StatusOK {
		state = "unavailable"
	}
	return c.Status(status).JSON(fiber.Map{"status": state, "checks": checks})
}
