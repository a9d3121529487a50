package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/services/eligibility"
)

// Bursary is a funding opportunity with academic requirements
type Bursary struct {
	ID            uint                                           `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time                                      `json:"created_at"`
	UpdatedAt     time.Time                                      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt                                 `gorm:"index" json:"-"`
	Name          string                                         `gorm:"not null;uniqueIndex" json:"name"`
	Provider      string                                         `gorm:"type:varchar(255)" json:"provider"`
	Description   string                                         `gorm:"type:text" json:"description"`
	Amount        int64                                          `gorm:"default:0" json:"amount"` // Annual value in rand
	FieldsOfStudy datatypes.JSONSlice[string]                    `gorm:"type:jsonb" json:"fields_of_study"`
	ClosingDate   *datatypes.Date                                `json:"closing_date,omitempty"`
	Requirements  datatypes.JSONType[eligibility.RequirementSet] `gorm:"type:jsonb" json:"requirements"`
}

func (b Bursary) Target() eligibility.Target {
	return eligibility.Target{ID: b.ID, Name: b.Name, Requirements: b.Requirements.Data()}
}
