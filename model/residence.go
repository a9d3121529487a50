package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Residence is student accommodation attached to a university
type Residence struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time                   `json:"created_at"`
	UpdatedAt    time.Time                   `json:"updated_at"`
	DeletedAt    gorm.DeletedAt              `gorm:"index" json:"-"`
	UniversityID uint                        `gorm:"not null;index" json:"university_id"`
	Name         string                      `gorm:"not null" json:"name"`
	Kind         string                      `gorm:"type:varchar(20);default:'mixed'" json:"kind"` // mixed, male, female
	Capacity     int                         `gorm:"default:0" json:"capacity"`
	MonthlyFee   int64                       `gorm:"default:0" json:"monthly_fee"`
	Amenities    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"amenities"`

	University University `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"university,omitempty"`
}
