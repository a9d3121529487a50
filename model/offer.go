package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OfferType is decided by the student's APS band
type OfferType string

const (
	OfferTypeUnconditional OfferType = "unconditional"
	OfferTypeConditional   OfferType = "conditional"
	OfferTypeWaitlist      OfferType = "waitlist"
)

// OfferStatus only moves forward out of active
type OfferStatus string

const (
	OfferStatusActive   OfferStatus = "active"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusDeclined OfferStatus = "declined"
	OfferStatusExpired  OfferStatus = "expired"
)

// IsTerminal reports whether no further transition is possible
func (s OfferStatus) IsTerminal() bool {
	return s == OfferStatusAccepted || s == OfferStatusDeclined || s == OfferStatusExpired
}

// Offer is generated from a pending application. The unique index on
// (student, course, university) keeps concurrent generation runs from
// producing duplicates.
type Offer struct {
	ID                 uint                        `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
	DeletedAt          gorm.DeletedAt              `gorm:"index" json:"-"`
	StudentID          uint                        `gorm:"not null;uniqueIndex:idx_offer_triple" json:"student_id"`
	CourseID           uint                        `gorm:"not null;uniqueIndex:idx_offer_triple" json:"course_id"`
	UniversityID       uint                        `gorm:"not null;uniqueIndex:idx_offer_triple" json:"university_id"`
	ApplicationID      uint                        `gorm:"not null;index" json:"application_id"`
	Type               OfferType                   `gorm:"type:varchar(20);not null" json:"type"`
	Conditions         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"conditions"`
	APS                int                         `gorm:"column:aps;not null" json:"aps"`
	ExpiryDate         datatypes.Date              `gorm:"not null;index" json:"expiry_date"`
	AcceptanceDeadline datatypes.Date              `gorm:"not null" json:"acceptance_deadline"`
	Status             OfferStatus                 `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	RespondedAt        *time.Time                  `json:"responded_at,omitempty"`

	// Relationships
	Course     Course          `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	University University      `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"university,omitempty"`
	Documents  []OfferDocument `gorm:"foreignKey:OfferID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}
