package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/model"
)

type applicationGORMRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationGORMRepository{db: db}
}

func (r *applicationGORMRepository) Create(ctx context.Context, app *model.Application) error {
	if app.Status == "" {
		app.Status = model.ApplicationStatusPending
	}
	return translate(r.db.WithContext(ctx).Create(app).Error, "inserting application")
}

func (r *applicationGORMRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("University").
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&apps).Error
	return apps, translate(err, "listing applications")
}
