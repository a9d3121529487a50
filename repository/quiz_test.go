package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/services/matching"
)

func TestQuizRepository_Upsert(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "quiz_responses" .* ON CONFLICT \("student_id"\) DO UPDATE SET`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	quiz := model.NewQuizResponse(matching.QuizAnswers{
		StudentID:         7,
		SocialLevel:       3,
		SleepSchedule:     2,
		MusicTolerance:    4,
		PartyFrequency:    1,
		SmokingPreference: 1,
		Hobbies:           []string{"chess"},
	})
	require.NoError(t, NewQuizRepository(db).Upsert(context.Background(), &quiz))
	assert.Equal(t, uint(4), quiz.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
