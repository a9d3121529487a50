package repository

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
)

const defaultCourseLimit = 50

type catalogGORMRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogGORMRepository{db: db}
}

func (r *catalogGORMRepository) ListUniversities(ctx context.Context) ([]model.University, error) {
	var res []model.University
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("name ASC").Find(&res).Error
	return res, translate(err, "listing universities")
}

func (r *catalogGORMRepository) GetUniversity(ctx context.Context, id uint) (*model.University, error) {
	var u model.University
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err, "finding university")
	}
	return &u, nil
}

func (r *catalogGORMRepository) CreateUniversity(ctx context.Context, u *model.University) error {
	return translate(r.db.WithContext(ctx).Create(u).Error, "inserting university")
}

func (r *catalogGORMRepository) ListCourses(ctx context.Context, filter CourseFilter) ([]model.Course, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Course{})
	if filter.UniversityID != 0 {
		query = query.Where("university_id = ?", filter.UniversityID)
	}
	if filter.Faculty != "" {
		query = query.Where("faculty = ?", filter.Faculty)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, translate(err, "counting courses")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultCourseLimit
	}
	var courses []model.Course
	err := query.Preload("University").
		Order("name ASC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&courses).Error
	if err != nil {
		return nil, 0, translate(err, "listing courses")
	}
	return courses, total, nil
}

func (r *catalogGORMRepository) AllCourses(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	err := r.db.WithContext(ctx).Order("id ASC").Find(&courses).Error
	return courses, translate(err, "loading courses")
}

func (r *catalogGORMRepository) GetCourse(ctx context.Context, id uint) (*model.Course, error) {
	var c model.Course
	if err := r.db.WithContext(ctx).Preload("University").First(&c, id).Error; err != nil {
		return nil, translate(err, "finding course")
	}
	return &c, nil
}

func (r *catalogGORMRepository) CreateCourse(ctx context.Context, c *model.Course) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "inserting course")
}

func (r *catalogGORMRepository) UpdateCourseRequirements(ctx context.Context, id uint, req eligibility.RequirementSet) error {
	res := r.db.WithContext(ctx).Model(&model.Course{}).
		Where("id = ?", id).
		Update("requirements", datatypes.NewJSONType(req))
	if res.Error != nil {
		return translate(res.Error, "updating course requirements")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "updating course requirements")
	}
	return nil
}

func (r *catalogGORMRepository) ListBursaries(ctx context.Context) ([]model.Bursary, error) {
	var res []model.Bursary
	err := r.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, translate(err, "listing bursaries")
}

func (r *catalogGORMRepository) CreateBursary(ctx context.Context, b *model.Bursary) error {
	return translate(r.db.WithContext(ctx).Create(b).Error, "inserting bursary")
}

func (r *catalogGORMRepository) ListCareers(ctx context.Context) ([]model.Career, error) {
	var res []model.Career
	err := r.db.WithContext(ctx).Order("id ASC").Find(&res).Error
	return res, translate(err, "listing careers")
}

func (r *catalogGORMRepository) CreateCareer(ctx context.Context, c *model.Career) error {
	return translate(r.db.WithContext(ctx).Create(c).Error, "inserting career")
}

func (r *catalogGORMRepository) ListResidences(ctx context.Context, universityID uint) ([]model.Residence, error) {
	query := r.db.WithContext(ctx).Preload("University")
	if universityID != 0 {
		query = query.Where("university_id = ?", universityID)
	}
	var res []model.Residence
	err := query.Order("name ASC").Find(&res).Error
	return res, translate(err, "listing residences")
}

func (r *catalogGORMRepository) CreateResidence(ctx context.Context, res *model.Residence) error {
	return translate(r.db.WithContext(ctx).Create(res).Error, "inserting residence")
}
