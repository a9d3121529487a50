package model

import (
	"time"

	"gorm.io/gorm"
)

// UniversityType is the public university category
type UniversityType string

const (
	UniversityTraditional   UniversityType = "traditional"
	UniversityComprehensive UniversityType = "comprehensive"
	UniversityOfTechnology  UniversityType = "technology"
)

// University represents an institution students apply to
type University struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;uniqueIndex" json:"name"`
	Code      string         `gorm:"uniqueIndex;not null" json:"code"` // e.g., "UCT", "WITS"; keys the offer threshold table
	Type      UniversityType `gorm:"type:varchar(20);default:'traditional'" json:"type"`
	City      string         `gorm:"type:varchar(100)" json:"city"`
	Province  string         `gorm:"type:varchar(100)" json:"province"`
	Website   string         `gorm:"type:varchar(255)" json:"website"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Courses    []Course    `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"courses,omitempty"`
	Residences []Residence `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"residences,omitempty"`
}
