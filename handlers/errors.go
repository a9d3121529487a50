package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/assistant"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
	"github.com/sahilchouksey/unimatch-api/utils/middleware"
	"github.com/sahilchouksey/unimatch-api/utils/response"
	"github.com/sahilchouksey/unimatch-api/utils/validation"
)

// HandleError writes the error envelope for anything a service returned.
// notFound is the message used for repository.ErrNotFound.
func HandleError(c *fiber.Ctx, log zerolog.Logger, err error, notFound string) error {
	var (
		invalid     *scoring.ValidationError
		document    *services.DocumentError
		rateLimited *assistant.RateLimitedError
		upstream    *assistant.UpstreamError
	)

	switch {
	case errors.As(err, &invalid):
		return response.ValidationError(c, invalid.Error(), fiber.Map{invalid.Field: invalid.Message})
	case errors.As(err, &document):
		return response.ValidationError(c, document.Problem, nil)
	case errors.Is(err, services.ErrNoMarks):
		return response.ValidationError(c, "Submit your marks first", nil)
	case errors.Is(err, services.ErrUnknownCondition):
		return response.ValidationError(c, "Offer has no such condition", nil)
	case errors.Is(err, repository.ErrNotFound):
		return response.NotFound(c, notFound)
	case errors.Is(err, repository.ErrDuplicate):
		return response.Conflict(c, "Resource already exists")
	case errors.Is(err, services.ErrGenerationInProgress):
		return response.Conflict(c, "Offer generation already in progress")
	case errors.Is(err, services.ErrOfferNotActive):
		return response.Conflict(c, "Offer is no longer active")
	case errors.Is(err, services.ErrAcceptanceClosed):
		return response.Conflict(c, "Acceptance deadline has passed")
	case errors.As(err, &rateLimited):
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(int(rateLimited.RetryAfter.Round(time.Second)/time.Second)))
		return response.TooManyRequests(c, "Assistant is busy, try again later")
	case errors.As(err, &upstream), errors.Is(err, assistant.ErrEmptyReply):
		log.Warn().Err(err).Msg("Chat upstream failed")
		return response.BadGateway(c, "Assistant is unavailable")
	case errors.Is(err, services.ErrStorageDisabled), errors.Is(err, assistant.ErrNotConfigured):
		return response.ServiceUnavailable(c, "Feature is not configured")
	case errors.Is(err, repository.ErrUnavailable):
		log.Error().Err(err).Msg("Store unavailable")
		return response.ServiceUnavailable(c, "")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("Request failed")
		return response.InternalServerError(c, "")
	}
}

// ParseBody decodes and validates the request body into req. It reports
// false after writing the error response.
func ParseBody(c *fiber.Ctx, v *validation.Validator, req interface{}) (bool, error) {
	if err := c.BodyParser(req); err != nil {
		return false, response.BadRequest(c, "Invalid request body")
	}
	if err := v.ValidateStruct(req); err != nil {
		return false, response.ValidationError(c, "", validation.FormatValidationErrors(err))
	}
	return true, nil
}

// ParamID reads a positive numeric route parameter
func ParamID(c *fiber.Ctx, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// StudentID returns the id of the authenticated caller
func StudentID(c *fiber.Ctx) (uint, error) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		return 0, response.Unauthorized(c, "User not authenticated")
	}
	return id, nil
}
