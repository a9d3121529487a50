package model

import (
	"time"

	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/services/matching"
)

// QuizResponse stores one lifestyle quiz per student; a resubmission replaces it
type QuizResponse struct {
	ID                uint                        `gorm:"primaryKey" json:"id"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
	StudentID         uint                        `gorm:"not null;uniqueIndex" json:"student_id"`
	SocialLevel       int                         `gorm:"not null" json:"social_level"`
	SleepSchedule     int                         `gorm:"not null" json:"sleep_schedule"`
	MusicTolerance    int                         `gorm:"not null" json:"music_tolerance"`
	PartyFrequency    int                         `gorm:"not null" json:"party_frequency"`
	SmokingPreference int                         `gorm:"not null" json:"smoking_preference"`
	Hobbies           datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"hobbies"`
	Interests         datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"interests"`

	Student Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}

func (QuizResponse) TableName() string {
	return "quiz_responses"
}

// Answers converts the row for the compatibility scorer
func (q QuizResponse) Answers() matching.QuizAnswers {
	return matching.QuizAnswers{
		StudentID:         q.StudentID,
		SocialLevel:       q.SocialLevel,
		SleepSchedule:     q.SleepSchedule,
		MusicTolerance:    q.MusicTolerance,
		PartyFrequency:    q.PartyFrequency,
		SmokingPreference: q.SmokingPreference,
		Hobbies:           q.Hobbies,
		Interests:         q.Interests,
	}
}

// NewQuizResponse builds the row for a validated set of answers
func NewQuizResponse(a matching.QuizAnswers) QuizResponse {
	return QuizResponse{
		StudentID:         a.StudentID,
		SocialLevel:       a.SocialLevel,
		SleepSchedule:     a.SleepSchedule,
		MusicTolerance:    a.MusicTolerance,
		PartyFrequency:    a.PartyFrequency,
		SmokingPreference: a.SmokingPreference,
		Hobbies:           datatypes.NewJSONSlice(a.Hobbies),
		Interests:         datatypes.NewJSONSlice(a.Interests),
	}
}
