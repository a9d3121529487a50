package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/services/eligibility"
)

// Course represents a degree or diploma programme offered by a university
type Course struct {
	ID            uint                                           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time                                      `json:"created_at"`
	UpdatedAt     time.Time                                      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt                                 `gorm:"index" json:"-"`
	UniversityID  uint                                           `gorm:"not null;uniqueIndex:idx_course_university_code" json:"university_id"`
	Name          string                                         `gorm:"not null" json:"name"`
	Code          string                                         `gorm:"not null;uniqueIndex:idx_course_university_code" json:"code"` // e.g., "BSC-CS"
	Faculty       string                                         `gorm:"type:varchar(150)" json:"faculty"`
	Description   string                                         `gorm:"type:text" json:"description"`
	DurationYears int                                            `gorm:"default:3" json:"duration_years"`
	Requirements  datatypes.JSONType[eligibility.RequirementSet] `gorm:"type:jsonb" json:"requirements"`

	// Relationships
	University University `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"university,omitempty"`
}

// Target adapts the course for the eligibility evaluator
func (c Course) Target() eligibility.Target {
	return eligibility.Target{ID: c.ID, Name: c.Name, Requirements: c.Requirements.Data()}
}
