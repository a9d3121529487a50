package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/services/eligibility"
)

// Career describes a profession and the school results it typically needs
type Career struct {
	ID             uint                                           `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time                                      `json:"created_at"`
	UpdatedAt      time.Time                                      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt                                 `gorm:"index" json:"-"`
	Name           string                                         `gorm:"not null;uniqueIndex" json:"name"`
	Sector         string                                         `gorm:"type:varchar(100)" json:"sector"`
	Description    string                                         `gorm:"type:text" json:"description"`
	MedianSalary   int64                                          `gorm:"default:0" json:"median_salary"`
	RelatedCourses datatypes.JSONSlice[string]                    `gorm:"type:jsonb" json:"related_courses"`
	Requirements   datatypes.JSONType[eligibility.RequirementSet] `gorm:"type:jsonb" json:"requirements"`
}

func (c Career) Target() eligibility.Target {
	return eligibility.Target{ID: c.ID, Name: c.Name, Requirements: c.Requirements.Data()}
}
