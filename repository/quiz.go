package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sahilchouksey/unimatch-api/model"
)

type quizGORMRepository struct {
	db *gorm.DB
}

func NewQuizRepository(db *gorm.DB) QuizRepository {
	return &quizGORMRepository{db: db}
}

// Upsert keys on student_id so a resubmission overwrites every answer
func (r *quizGORMRepository) Upsert(ctx context.Context, quiz *model.QuizResponse) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"social_level", "sleep_schedule", "music_tolerance", "party_frequency",
			"smoking_preference", "hobbies", "interests", "updated_at",
		}),
	}).Create(quiz).Error
	return translate(err, "upserting quiz")
}

func (r *quizGORMRepository) GetByStudent(ctx context.Context, studentID uint) (*model.QuizResponse, error) {
	var q model.QuizResponse
	if err := r.db.WithContext(ctx).Where("student_id = ?", studentID).First(&q).Error; err != nil {
		return nil, translate(err, "finding quiz")
	}
	return &q, nil
}

func (r *quizGORMRepository) All(ctx context.Context) ([]model.QuizResponse, error) {
	var res []model.QuizResponse
	err := r.db.WithContext(ctx).Order("student_id ASC").Find(&res).Error
	return res, translate(err, "loading quizzes")
}
