package student

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/handlers"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/matching"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
	"github.com/sahilchouksey/unimatch-api/utils/validation"
)

const maxRoommateLimit = 50

// StudentHandler serves the authenticated student's marks, matches and quiz
type StudentHandler struct {
	students  *services.StudentService
	validator *validation.Validator
	log       zerolog.Logger
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(students *services.StudentService) *StudentHandler {
	return &StudentHandler{
		students:  students,
		validator: validation.NewValidator(),
		log:       logger.With("student-handler"),
	}
}

// SubmitMarksRequest replaces the whole mark set
type SubmitMarksRequest struct {
	Marks scoring.MarkSet `json:"marks" validate:"required,min=1,dive,keys,subject,endkeys,gte=0,lte=100"`
}

// ScoreQuery selects the APS formula
type ScoreQuery struct {
	Variant string `query:"variant" validate:"apsvariant"`
}

// QuizRequest represents the lifestyle quiz answers
type QuizRequest struct {
	SocialLevel       int      `json:"social_level" validate:"required,min=1,max=5"`
	SleepSchedule     int      `json:"sleep_schedule" validate:"required,min=1,max=3"`
	MusicTolerance    int      `json:"music_tolerance" validate:"required,min=1,max=5"`
	PartyFrequency    int      `json:"party_frequency" validate:"required,min=1,max=5"`
	SmokingPreference int      `json:"smoking_preference" validate:"required,min=1,max=3"`
	Hobbies           []string `json:"hobbies" validate:"required,min=1,max=20,dive,min=1,max=50"`
	Interests         []string `json:"interests" validate:"required,min=1,max=20,dive,min=1,max=50"`
}

// MarksResponse is returned by the marks endpoints
type MarksResponse struct {
	Marks scoring.MarkSet `json:"marks"`
	APS   *int            `json:"aps,omitempty"`
}

// SubmitMarks handles PUT /api/v1/me/marks
func (h *StudentHandler) SubmitMarks(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	var req SubmitMarksRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}

	aps, err := h.students.SubmitMarks(c.UserContext(), studentID, req.Marks)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.SuccessWithMessage(c, "Marks saved", MarksResponse{Marks: req.Marks, APS: &aps})
}

// GetMarks handles GET /api/v1/me/marks
func (h *StudentHandler) GetMarks(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	marks, err := h.students.GetMarks(c.UserContext(), studentID)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.Success(c, MarksResponse{Marks: marks})
}

// GetScore handles GET /api/v1/me/score?variant=
func (h *StudentHandler) GetScore(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	var query ScoreQuery
	if err := c.QueryParser(&query); err != nil {
		return response.BadRequest(c, "Invalid query parameters")
	}
	if err := h.validator.ValidateStruct(&query); err != nil {
		return response.ValidationError(c, "", validation.FormatValidationErrors(err))
	}

	score, err := h.students.GetScore(c.UserContext(), studentID, scoring.Variant(query.Variant))
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.Success(c, score)
}

// CourseMatches handles GET /api/v1/me/matches/courses
func (h *StudentHandler) CourseMatches(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	matches, err := h.students.CourseMatches(c.UserContext(), studentID, c.QueryBool("eligible_only"))
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.Success(c, matches)
}

// BursaryMatches handles GET /api/v1/me/matches/bursaries
func (h *StudentHandler) BursaryMatches(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	matches, err := h.students.BursaryMatches(c.UserContext(), studentID, c.QueryBool("eligible_only"))
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.Success(c, matches)
}

// CareerMatches handles GET /api/v1/me/matches/careers
func (h *StudentHandler) CareerMatches(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	matches, err := h.students.CareerMatches(c.UserContext(), studentID, c.QueryBool("eligible_only"))
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.Success(c, matches)
}

// CourseEligibility handles GET /api/v1/courses/:id/eligibility
func (h *StudentHandler) CourseEligibility(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}
	courseID, ok := handlers.ParamID(c, "id")
	if !ok {
		return response.BadRequest(c, "Invalid course ID")
	}

	result, err := h.students.CourseEligibility(c.UserContext(), studentID, courseID)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Course not found")
	}
	return response.Success(c, result)
}

// SubmitQuiz handles PUT /api/v1/me/quiz
func (h *StudentHandler) SubmitQuiz(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	var req QuizRequest
	if ok, err := handlers.ParseBody(c, h.validator, &req); !ok {
		return err
	}

	quiz, err := h.students.SubmitQuiz(c.UserContext(), studentID, matching.QuizAnswers{
		SocialLevel:       req.SocialLevel,
		SleepSchedule:     req.SleepSchedule,
		MusicTolerance:    req.MusicTolerance,
		PartyFrequency:    req.PartyFrequency,
		SmokingPreference: req.SmokingPreference,
		Hobbies:           req.Hobbies,
		Interests:         req.Interests,
	})
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.SuccessWithMessage(c, "Quiz saved", quiz)
}

// Roommates handles GET /api/v1/me/roommates?limit=
func (h *StudentHandler) Roommates(c *fiber.Ctx) error {
	studentID, err := handlers.StudentID(c)
	if studentID == 0 {
		return err
	}

	limit := c.QueryInt("limit", matching.DefaultRoommateLimit)
	if limit > maxRoommateLimit {
		limit = maxRoommateLimit
	}

	matches, err := h.students.Roommates(c.UserContext(), studentID, limit)
	if err != nil {
		return handlers.HandleError(c, h.log, err, "Student not found")
	}
	return response.Success(c, matches)
}
