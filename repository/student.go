package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

type studentGORMRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentGORMRepository{db: db}
}

func (r *studentGORMRepository) GetByID(ctx context.Context, id uint) (*model.Student, error) {
	var s model.Student
	err := r.db.WithContext(ctx).First(&s, id).Error
	if err != nil {
		return nil, translate(err, "finding student")
	}
	return &s, nil
}

func (r *studentGORMRepository) GetByEmail(ctx context.Context, email string) (*model.Student, error) {
	var s model.Student
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	if err != nil {
		return nil, translate(err, "finding student by email")
	}
	return &s, nil
}

func (r *studentGORMRepository) Create(ctx context.Context, student *model.Student) error {
	return translate(r.db.WithContext(ctx).Create(student).Error, "inserting student")
}

func (r *studentGORMRepository) UpdateMarks(ctx context.Context, id uint, marks scoring.MarkSet) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Student{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"marks":            datatypes.NewJSONType(marks),
			"marks_updated_at": now,
		})
	if res.Error != nil {
		return translate(res.Error, "updating marks")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "updating marks")
	}
	return nil
}
