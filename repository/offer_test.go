package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/model"
)

func testOffer() *model.Offer {
	today := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return &model.Offer{
		StudentID:          1,
		CourseID:           2,
		UniversityID:       3,
		ApplicationID:      4,
		Type:               model.OfferTypeConditional,
		Conditions:         datatypes.NewJSONSlice([]string{"Pay registration fee"}),
		APS:                40,
		ExpiryDate:         datatypes.Date(today.AddDate(0, 0, 30)),
		AcceptanceDeadline: datatypes.Date(today.AddDate(0, 0, 14)),
		Status:             model.OfferStatusActive,
	}
}

func TestOfferRepository_CreateOffer(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  uint
		wantErr error
	}{
		{
			name: "created",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO "offers"`).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))
			},
			wantID: 9,
		},
		{
			name: "duplicate triple",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO "offers"`).
					WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_offer_triple"})
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "timeout",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO "offers"`).
					WillReturnError(context.DeadlineExceeded)
			},
			wantErr: ErrUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.mock(mock)

			offer := testOffer()
			err := NewOfferRepository(db).CreateOffer(context.Background(), offer)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, offer.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOfferRepository_Respond(t *testing.T) {
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		name     string
		affected int64
		wantOK   bool
	}{
		{name: "active offer owned by student", affected: 1, wantOK: true},
		{name: "foreign, expired or already answered", affected: 0, wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			mock.ExpectExec(`UPDATE "offers" SET .* WHERE \(id = \$\d+ AND student_id = \$\d+ AND status = \$\d+ AND expiry_date >= \$\d+\)`).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			ok, err := NewOfferRepository(db).Respond(context.Background(), 5, 1, model.OfferStatusAccepted, today)
			require.NoError(t, err)
			assert.Equal(t, tc.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOfferRepository_ExpireOverdue(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`UPDATE "offers" SET .* WHERE \(status = \$\d+ AND expiry_date < \$\d+\)`).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := NewOfferRepository(db).ExpireOverdue(context.Background(), time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepository_GetForStudent_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "offers" WHERE \(id = \$1 AND student_id = \$2\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewOfferRepository(db).GetForStudent(context.Background(), 5, 1)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
