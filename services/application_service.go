package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

type ApplicationService struct {
	applications repository.ApplicationRepository
	catalog      repository.CatalogRepository
	timeout      time.Duration
	log          zerolog.Logger
}

func NewApplicationService(applications repository.ApplicationRepository, catalog repository.CatalogRepository, timeout time.Duration) *ApplicationService {
	return &ApplicationService{
		applications: applications,
		catalog:      catalog,
		timeout:      timeout,
		log:          logger.With("application-service"),
	}
}

// Apply creates a pending application for the course at its own university.
// A second application for the same course fails with repository.ErrDuplicate.
func (s *ApplicationService) Apply(ctx context.Context, studentID, courseID uint) (*model.Application, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	course, err := s.catalog.GetCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	app := &model.Application{
		StudentID:    studentID,
		CourseID:     course.ID,
		UniversityID: course.UniversityID,
		Status:       model.ApplicationStatusPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, err
	}
	app.Course = *course
	app.University = course.University

	s.log.Info().Uint("student_id", studentID).Uint("course_id", courseID).Msg("Application submitted")
	return app, nil
}

func (s *ApplicationService) List(ctx context.Context, studentID uint) ([]model.Application, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return s.applications.ListByStudent(ctx, studentID)
}
