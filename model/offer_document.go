package model

import (
	"time"

	"gorm.io/gorm"
)

// OfferDocument is a PDF a student uploaded to satisfy an offer condition
type OfferDocument struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	OfferID   uint           `gorm:"not null;index" json:"offer_id"`
	StudentID uint           `gorm:"not null;index" json:"student_id"`
	Condition string         `gorm:"type:varchar(255)" json:"condition"`
	Filename  string         `gorm:"not null" json:"filename"`
	SpacesKey string         `gorm:"not null" json:"spaces_key"` // S3-style object key
	SpacesURL string         `gorm:"not null" json:"spaces_url"`
	FileSize  int64          `gorm:"default:0" json:"file_size"`
	PageCount int            `gorm:"default:0" json:"page_count"`
}
