package response

import (
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope of every JSON answer
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    interface{}  `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type PaginationMeta struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}

type PaginatedResponse struct {
	Success    bool           `json:"success"`
	Data       interface{}    `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// failure is the machine code and fallback message for an error status
type failure struct {
	code    string
	message string
}

var failures = map[int]failure{
	fiber.StatusBadRequest:          {"BAD_REQUEST", "Bad request"},
	fiber.StatusUnauthorized:        {"UNAUTHORIZED", "Unauthorized access"},
	fiber.StatusForbidden:           {"FORBIDDEN", "Access forbidden"},
	fiber.StatusNotFound:            {"NOT_FOUND", "Resource not found"},
	fiber.StatusConflict:            {"CONFLICT", "Resource already exists"},
	fiber.StatusUnprocessableEntity: {"VALIDATION_ERROR", "Validation failed"},
	fiber.StatusTooManyRequests:     {"TOO_MANY_REQUESTS", "Too many requests"},
	fiber.StatusInternalServerError: {"INTERNAL_ERROR", "Internal server error"},
	fiber.StatusBadGateway:          {"BAD_GATEWAY", "Upstream service error"},
	fiber.StatusServiceUnavailable:  {"SERVICE_UNAVAILABLE", "Service temporarily unavailable"},
}

func Success(c *fiber.Ctx, data interface{}) error {
	return SuccessWithMessage(c, "", data)
}

func SuccessWithMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Response{
		Success: true,
		Message: "Resource created successfully",
		Data:    data,
	})
}

func Paginated(c *fiber.Ctx, data interface{}, pagination PaginationMeta) error {
	return c.Status(fiber.StatusOK).JSON(PaginatedResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Fail writes an error envelope. The code comes from the status; unknown
// statuses fall back to HTTP_ERROR. An empty message uses the status default.
func Fail(c *fiber.Ctx, status int, message string, details interface{}) error {
	f, ok := failures[status]
	if !ok {
		f = failure{code: "HTTP_ERROR", message: "Request failed"}
	}
	if message == "" {
		message = f.message
	}
	return c.Status(status).JSON(Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    f.code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, message, nil)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusUnauthorized, message, nil)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusForbidden, message, nil)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, message, nil)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusConflict, message, nil)
}

func TooManyRequests(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusTooManyRequests, message, nil)
}

// ValidationError answers 422; details is usually a field to message map
func ValidationError(c *fiber.Ctx, message string, details interface{}) error {
	return Fail(c, fiber.StatusUnprocessableEntity, message, details)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusInternalServerError, message, nil)
}

func BadGateway(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadGateway, message, nil)
}

func ServiceUnavailable(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusServiceUnavailable, message, nil)
}
