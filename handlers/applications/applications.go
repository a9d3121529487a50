package applications

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/handlers"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
	"github.com/sahilchouksey/unimatch-api/utils/validation"
)

// ApplicationHandler handles a student's course applications
type ApplicationHandler struct {
	applications *services.ApplicationService
	validator    *validation.Validator
	log          zerolog.Logger
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applications: applications,
		validator:    validation.NewValidator(),
		log:          logger.With("application-handler"),
	}
}

// ApplyRequest represents the request body for applying to a course
type ApplyRequest struct {
	CourseID uint `json:"course_id" validate:"required"`
}

// Apply handles POST /api/v1/me/applications
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	var req ApplyRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}

	app, err := h.applications.Apply(c.UserContext(), studentID, req.CourseID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return response.Conflict(c, "You have already applied for this course")
		}
		return handlers.HandleError(c, h.log, err, "Course not found")
	}
	return response.Created(c, app)
}

// List handles GET /api/v1/me/applications
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	apps, err := h.applications.List(c.UserContext(), studentID)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Application not found")
	}
	return response.Success(c, apps)
}
