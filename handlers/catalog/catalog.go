package catalog

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/handlers"
	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
	"github.com/sahilchouksey/unimatch-api/utils/validation"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// CatalogHandler serves universities, courses, bursaries, careers and residences
type CatalogHandler struct {
	catalog   *services.CatalogService
	validator *validation.Validator
	log       zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalog:   catalog,
		validator: validation.NewValidator(),
		log:       logger.With("catalog-handler"),
	}
}

// CreateCourseRequest represents the request body for creating a course
type CreateCourseRequest struct {
	UniversityID  uint                       `json:"university_id" validate:"required"`
	Name          string                     `json:"name" validate:"required,min=3,max=255"`
	Code          string                     `json:"code" validate:"required,min=2,max=50"`
	Faculty       string                     `json:"faculty" validate:"omitempty,max=150"`
	Description   string                     `json:"description" validate:"omitempty,max=5000"`
	DurationYears int                        `json:"duration_years" validate:"omitempty,min=1,max=8"`
	Requirements  eligibility.RequirementSet `json:"requirements"`
}

// UpdateRequirementsRequest replaces a course's entry requirements
type UpdateRequirementsRequest struct {
	Requirements eligibility.RequirementSet `json:"requirements"`
}

// CreateBursaryRequest represents the request body for creating a bursary
type CreateBursaryRequest struct {
	Name          string                     `json:"name" validate:"required,min=3,max=255"`
	Provider      string                     `json:"provider" validate:"omitempty,max=255"`
	Description   string                     `json:"description" validate:"omitempty,max=5000"`
	Amount        int64                      `json:"amount" validate:"gte=0"`
	FieldsOfStudy []string                   `json:"fields_of_study" validate:"omitempty,dive,min=2,max=100"`
	ClosingDate   string                     `json:"closing_date" validate:"omitempty,datetime=2006-01-02"`
	Requirements  eligibility.RequirementSet `json:"requirements"`
}

// ListUniversities handles GET /api/v1/universities
func (h *CatalogHandler) ListUniversities(c *fiber.Ctx) error {
	universities, err := h.catalog.ListUniversities(c.UserContext())
	if err != nil {
		return handlers.HandleError(c, h.log, err, "University not found")
	}
	return response.Success(c, universities)
}

// ListCourses handles GET /api/v1/courses
func (h *CatalogHandler) ListCourses(c *fiber.Ctx) error {
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageSize)))
	universityID, _ := strconv.ParseUint(c.Query("university_id"), 10, 64)

	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}

	courses, total, err := h.catalog.ListCourses(c.UserContext(), repository.CourseFilter{
		UniversityID: uint(universityID),
		Faculty:      validation.SanitizeString(c.Query("faculty")),
		Search:       validation.SanitizeString(c.Query("search")),
		Offset:       offset,
		Limit:        limit,
	})
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Course not found")
	}

	return response.Paginated(c, courses, response.PaginationMeta{
		Offset: offset,
		Limit:  limit,
		Total:  total,
	})
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CatalogHandler) GetCourse(c *fiber.Ctx) error {
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	course, err := h.catalog.GetCourse(c.UserContext(), id)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Course not found")
	}
	return response.Success(c, course)
}

// CreateCourse handles POST /api/v1/courses (admin)
func (h *CatalogHandler) CreateCourse(c *fiber.Ctx) error {
	var req CreateCourseRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}

	course := &model.Course{
		UniversityID:  req.UniversityID,
		Name:          validation.SanitizeString(req.Name),
		Code:          validation.SanitizeString(req.Code),
		Faculty:       validation.SanitizeString(req.Faculty),
		Description:   validation.SanitizeString(req.Description),
		DurationYears: req.DurationYears,
		Requirements:  datatypes.NewJSONType(req.Requirements),
	}
	if course.DurationYears == 0 {
		course.DurationYears = 3
	}

	if err := h.catalog.CreateCourse(c.UserContext(), course); err != nil {
		return handlers.HandleError(c, h.log, err, "University not found")
	}
	return response.Created(c, course)
}

// UpdateCourseRequirements handles PUT /api/v1/courses/:id/requirements (admin)
func (h *CatalogHandler) UpdateCourseRequirements(c *fiber.Ctx) error {
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	var req UpdateRequirementsRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}

	if err := h.catalog.UpdateCourseRequirements(c.UserContext(), id, req.Requirements); err != nil {
		return handlers.HandleError(c, h.log, err, "Course not found")
	}
	return response.SuccessWithMessage(c, "Requirements updated", req.Requirements)
}

// ListBursaries handles GET /api/v1/bursaries
func (h *CatalogHandler) ListBursaries(c *fiber.Ctx) error {
	bursaries, err := h.catalog.ListBursaries(c.UserContext())
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Bursary not found")
	}
	return response.Success(c, bursaries)
}

// CreateBursary handles POST /api/v1/bursaries (admin)
func (h *CatalogHandler) CreateBursary(c *fiber.Ctx) error {
	var req CreateBursaryRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}

	bursary := &model.Bursary{
		Name:          validation.SanitizeString(req.Name),
		Provider:      validation.SanitizeString(req.Provider),
		Description:   validation.SanitizeString(req.Description),
		Amount:        req.Amount,
		FieldsOfStudy: datatypes.NewJSONSlice(req.FieldsOfStudy),
		Requirements:  datatypes.NewJSONType(req.Requirements),
	}
	if req.ClosingDate != "" {
		// validated above
		closing, _ := time.Parse(time.DateOnly, req.ClosingDate)
		date := datatypes.Date(closing)
		bursary.ClosingDate = &date
	}

	if err := h.catalog.CreateBursary(c.UserContext(), bursary); err != nil {
		return handlers.HandleError(c, h.log, err, "Bursary not found")
	}
	return response.Created(c, bursary)
}

// ListCareers handles GET /api/v1/careers
func (h *CatalogHandler) ListCareers(c *fiber.Ctx) error {
	careers, err := h.catalog.ListCareers(c.UserContext())
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Career not found")
	}
	return response.Success(c, careers)
}

// ListResidences handles GET /api/v1/residences?university_id=
func (h *CatalogHandler) ListResidences(c *fiber.Ctx) error {
	universityID, err := strconv.ParseUint(c.Query("university_id", "0"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "Invalid university ID")
	}

	residences, err := h.catalog.ListResidences(c.UserContext(), uint(universityID))
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Residence not found")
	}
	return response.Success(c, residences)
}
