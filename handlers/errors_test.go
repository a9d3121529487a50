package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/assistant"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
	"github.com/sahilchouksey/unimatch-api/utils/response"
)

func TestHandleError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{
			name:     "invalid marks",
			err:      &scoring.ValidationError{Field: "latin", Value: 80, Message: "unknown subject"},
			wantCode: fiber.StatusUnprocessableEntity,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "rejected document",
			err:      &services.DocumentError{Problem: "Only PDF files are supported"},
			wantCode: fiber.StatusUnprocessableEntity,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "no marks",
			err:      services.ErrNoMarks,
			wantCode: fiber.StatusUnprocessableEntity,
			wantErr:  "VALIDATION_ERROR",
		},
		{
			name:     "wrapped not found",
			err:      errors.Wrap(repository.ErrNotFound, "finding course"),
			wantCode: fiber.StatusNotFound,
			wantErr:  "NOT_FOUND",
		},
		{
			name:     "duplicate",
			err:      errors.Wrap(repository.ErrDuplicate, "inserting application"),
			wantCode: fiber.StatusConflict,
			wantErr:  "CONFLICT",
		},
		{
			name:     "offer already answered",
			err:      services.ErrOfferNotActive,
			wantCode: fiber.StatusConflict,
			wantErr:  "CONFLICT",
		},
		{
			name:     "acceptance deadline passed",
			err:      services.ErrAcceptanceClosed,
			wantCode: fiber.StatusConflict,
			wantErr:  "CONFLICT",
		},
		{
			name:     "generation in progress",
			err:      services.ErrGenerationInProgress,
			wantCode: fiber.StatusConflict,
			wantErr:  "CONFLICT",
		},
		{
			name:     "upstream failure",
			err:      &assistant.UpstreamError{Status: 500, Body: "boom"},
			wantCode: fiber.StatusBadGateway,
			wantErr:  "BAD_GATEWAY",
		},
		{
			name:     "storage disabled",
			err:      services.ErrStorageDisabled,
			wantCode: fiber.StatusServiceUnavailable,
			wantErr:  "SERVICE_UNAVAILABLE",
		},
		{
			name:     "store timeout",
			err:      &repository.StoreError{Op: "listing offers", Err: context.DeadlineExceeded, Unavailable: true},
			wantCode: fiber.StatusServiceUnavailable,
			wantErr:  "SERVICE_UNAVAILABLE",
		},
		{
			name:     "store failure",
			err:      &repository.StoreError{Op: "listing offers", Err: errors.New("syntax error")},
			wantCode: fiber.StatusInternalServerError,
			wantErr:  "INTERNAL_ERROR",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return HandleError(c, zerolog.Nop(), tc.err, "Thing not found")
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)

			var body response.Response
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tc.wantErr, body.Error.Code)
		})
	}
}

func TestHandleError_RateLimited(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return HandleError(c, zerolog.Nop(), &assistant.RateLimitedError{RetryAfter: 30 * time.Second}, "")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "30", resp.Header.Get(fiber.HeaderRetryAfter))
}

func TestParamID(t *testing.T) {
	app := fiber.New()
	app.Get("/courses/:id", func(c *fiber.Ctx) error {
		id, ok := ParamID(c, "id")
		if !ok {
			return c.SendStatus(fiber.StatusBadRequest)
		}
		return c.JSON(fiber.Map{"id": id})
	})

	for path, want := range map[string]int{
		"/courses/12":  fiber.StatusOK,
		"/courses/0":   fiber.StatusBadRequest,
		"/courses/-3":  fiber.StatusBadRequest,
		"/courses/abc": fiber.StatusBadRequest,
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, path)
	}
}

type fakeStorage struct {
	err error
}

func (f fakeStorage) Init() error        { return nil }
func (f fakeStorage) Close() error       { return nil }
func (f fakeStorage) HealthCheck() error { return f.err }
func (f fakeStorage) GetDB() *gorm.DB    { return nil }

type fakeCache struct {
	err error
}

func (f fakeCache) HealthCheck(context.Context) error { return f.err }

func TestHandleCheckHealth(t *testing.T) {
	testCases := []struct {
		name       string
		store      fakeStorage
		cache      HealthChecker
		wantCode   int
		wantStatus string
	}{
		{name: "all healthy", cache: fakeCache{}, wantCode: fiber.StatusOK, wantStatus: "ok"},
		{name: "no cache configured", wantCode: fiber.StatusOK, wantStatus: "ok"},
		{name: "cache down is degraded only", cache: fakeCache{err: errors.New("dial tcp")}, wantCode: fiber.StatusOK, wantStatus: "ok"},
		{name: "database down", store: fakeStorage{err: errors.New("connection refused")}, wantCode: fiber.StatusServiceUnavailable, wantStatus: "unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/ping", func(c *fiber.Ctx) error {
				return HandleCheckHealth(c, tc.store, tc.cache)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ping", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)

			var body struct {
				Status string            `json:"status"`
				Checks map[string]string `json:"checks"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantStatus, body.Status)
			assert.NotEmpty(t, body.Checks["database"])
		})
	}
}
