package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

// Student is a learner profile. The ID matches the subject of the identity token.
type Student struct {
	ID             uint                                `gorm:"primaryKey" json:"id"`
	CreatedAt      time.Time                           `json:"created_at"`
	UpdatedAt      time.Time                           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt                      `gorm:"index" json:"-"`
	Email          string                              `gorm:"uniqueIndex;not null" json:"email"`
	FirstName      string                              `gorm:"type:varchar(100)" json:"first_name"`
	LastName       string                              `gorm:"type:varchar(100)" json:"last_name"`
	School         string                              `gorm:"type:varchar(255)" json:"school"`
	Grade          int                                 `gorm:"default:12" json:"grade"`
	Marks          datatypes.JSONType[scoring.MarkSet] `gorm:"type:jsonb" json:"marks"`
	MarksUpdatedAt *time.Time                          `json:"marks_updated_at,omitempty"`

	// Relationships
	Applications []Application `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Offers       []Offer       `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

// MarkSet returns the stored marks, never nil
func (s Student) MarkSet() scoring.MarkSet {
	marks := s.Marks.Data()
	if marks == nil {
		return scoring.MarkSet{}
	}
	return marks
}
