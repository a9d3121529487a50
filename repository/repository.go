package repository

import (
	"context"
	"time"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

//go:generate mockgen -source=./repository.go -package=repomocks -destination=mocks/repository.mock.go

type StudentRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Student, error)
	GetByEmail(ctx context.Context, email string) (*model.Student, error)
	Create(ctx context.Context, student *model.Student) error
	// UpdateMarks replaces the whole mark set
	UpdateMarks(ctx context.Context, id uint, marks scoring.MarkSet) error
}

// CourseFilter narrows course listings; zero values match everything
type CourseFilter struct {
	UniversityID uint
	Faculty      string
	Search       string
	Offset       int
	Limit        int
}

type CatalogRepository interface {
	ListUniversities(ctx context.Context) ([]model.University, error)
	GetUniversity(ctx context.Context, id uint) (*model.University, error)
	CreateUniversity(ctx context.Context, u *model.University) error

	ListCourses(ctx context.Context, filter CourseFilter) ([]model.Course, int64, error)
	AllCourses(ctx context.Context) ([]model.Course, error)
	GetCourse(ctx context.Context, id uint) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	UpdateCourseRequirements(ctx context.Context, id uint, req eligibility.RequirementSet) error

	ListBursaries(ctx context.Context) ([]model.Bursary, error)
	CreateBursary(ctx context.Context, b *model.Bursary) error

	ListCareers(ctx context.Context) ([]model.Career, error)
	CreateCareer(ctx context.Context, c *model.Career) error

	ListResidences(ctx context.Context, universityID uint) ([]model.Residence, error)
	CreateResidence(ctx context.Context, r *model.Residence) error
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *model.Application) error
	// ListByStudent preloads Course and University
	ListByStudent(ctx context.Context, studentID uint) ([]model.Application, error)
}

type OfferRepository interface {
	CreateOffer(ctx context.Context, offer *model.Offer) error
	ListByStudent(ctx context.Context, studentID uint) ([]model.Offer, error)
	GetForStudent(ctx context.Context, id, studentID uint) (*model.Offer, error)
	// Respond moves an active, unexpired offer owned by studentID to status.
	// It reports false when no such offer exists.
	Respond(ctx context.Context, id, studentID uint, status model.OfferStatus, today time.Time) (bool, error)
	// ExpireOverdue marks active offers whose expiry date is before today
	ExpireOverdue(ctx context.Context, today time.Time) (int64, error)
	AddDocument(ctx context.Context, doc *model.OfferDocument) error
}

type QuizRepository interface {
	Upsert(ctx context.Context, quiz *model.QuizResponse) error
	GetByStudent(ctx context.Context, studentID uint) (*model.QuizResponse, error)
	All(ctx context.Context) ([]model.QuizResponse, error)
}
