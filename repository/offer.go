package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/model"
)

type offerGORMRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerGORMRepository{db: db}
}

func (r *offerGORMRepository) CreateOffer(ctx context.Context, offer *model.Offer) error {
	return translate(r.db.WithContext(ctx).Create(offer).Error, "inserting offer")
}

func (r *offerGORMRepository) ListByStudent(ctx context.Context, studentID uint) ([]model.Offer, error) {
	var offers []model.Offer
	err := r.db.WithContext(ctx).
		Preload("Course").
		Preload("University").
		Preload("Documents").
		Where("student_id = ?", studentID).
		Order("id ASC").
		Find(&offers).Error
	return offers, translate(err, "listing offers")
}

func (r *offerGORMRepository) GetForStudent(ctx context.Context, id, studentID uint) (*model.Offer, error) {
	var o model.Offer
	err := r.db.WithContext(ctx).Where("id = ? AND student_id = ?", id, studentID).First(&o).Error
	if err != nil {
		return nil, translate(err, "finding offer")
	}
	return &o, nil
}

// Respond is a single conditional UPDATE so two concurrent responses cannot
// both succeed.
func (r *offerGORMRepository) Respond(ctx context.Context, id, studentID uint, status model.OfferStatus, today time.Time) (bool, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("id = ? AND student_id = ? AND status = ? AND expiry_date >= ?",
			id, studentID, model.OfferStatusActive, datatypes.Date(today)).
		Updates(map[string]interface{}{
			"status":       status,
			"responded_at": now,
		})
	if res.Error != nil {
		return false, translate(res.Error, "responding to offer")
	}
	return res.RowsAffected == 1, nil
}

func (r *offerGORMRepository) ExpireOverdue(ctx context.Context, today time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Offer{}).
		Where("status = ? AND expiry_date < ?", model.OfferStatusActive, datatypes.Date(today)).
		Update("status", model.OfferStatusExpired)
	if res.Error != nil {
		return 0, translate(res.Error, "expiring offers")
	}
	return res.RowsAffected, nil
}

func (r *offerGORMRepository) AddDocument(ctx context.Context, doc *model.OfferDocument) error {
	return translate(r.db.WithContext(ctx).Create(doc).Error, "inserting offer document")
}
