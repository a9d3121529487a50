package model

import (
	"time"

	"gorm.io/gorm"
)

// ApplicationStatus is where a student's application sits in the admissions process
type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusAccepted    ApplicationStatus = "accepted"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusWaitlisted  ApplicationStatus = "waitlisted"
)

// Application is a student's request for a place on a course.
// At most one exists per (student, course, university).
type Application struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`
	StudentID    uint              `gorm:"not null;uniqueIndex:idx_application_triple" json:"student_id"`
	CourseID     uint              `gorm:"not null;uniqueIndex:idx_application_triple" json:"course_id"`
	UniversityID uint              `gorm:"not null;uniqueIndex:idx_application_triple" json:"university_id"`
	Status       ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`

	// Relationships
	Student    Student    `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Course     Course     `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"course,omitempty"`
	University University `gorm:"foreignKey:UniversityID;constraint:OnDelete:CASCADE" json:"university,omitempty"`
}
