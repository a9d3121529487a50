package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

// CatalogService serves universities, courses, bursaries, careers and
// residences. Requirement sets are validated before they are stored.
type CatalogService struct {
	catalog repository.CatalogRepository
	timeout time.Duration
	log     zerolog.Logger
}

func NewCatalogService(catalog repository.CatalogRepository, timeout time.Duration) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		timeout: timeout,
		log:     logger.With("catalog-service"),
	}
}

func (s *CatalogService) ListUniversities(ctx context.Context) ([]model.University, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.ListUniversities(ctx)
}

func (s *CatalogService) ListCourses(ctx context.Context, filter repository.CourseFilter) ([]model.Course, int64, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.ListCourses(ctx, filter)
}

func (s *CatalogService) GetCourse(ctx context.Context, id uint) (*model.Course, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.GetCourse(ctx, id)
}

func (s *CatalogService) CreateCourse(ctx context.Context, course *model.Course) error {
	if err := course.Requirements.Data().Validate(); err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	if _, err := s.catalog.GetUniversity(ctx, course.UniversityID); err != nil {
		return err
	}
	if err := s.catalog.CreateCourse(ctx, course); err != nil {
		return err
	}
	s.log.Info().Uint("course_id", course.ID).Str("code", course.Code).Msg("Course created")
	return nil
}

func (s *CatalogService) UpdateCourseRequirements(ctx context.Context, id uint, req eligibility.RequirementSet) error {
	if err := req.Validate(); err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.UpdateCourseRequirements(ctx, id, req)
}

func (s *CatalogService) ListBursaries(ctx context.Context) ([]model.Bursary, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.ListBursaries(ctx)
}

func (s *CatalogService) CreateBursary(ctx context.Context, bursary *model.Bursary) error {
	if err := bursary.Requirements.Data().Validate(); err != nil {
		return err
	}
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.CreateBursary(ctx, bursary)
}

func (s *CatalogService) ListCareers(ctx context.Context) ([]model.Career, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.ListCareers(ctx)
}

func (s *CatalogService) ListResidences(ctx context.Context, universityID uint) ([]model.Residence, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.catalog.ListResidences(ctx, universityID)
}
