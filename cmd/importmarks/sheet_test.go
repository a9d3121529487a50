package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	repomocks "github.com/sahilchouksey/unimatch-api/repository/mocks"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/services/scoring"
)

func workbook(t *testing.T, rows map[int][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for line, row := range rows {
		require.NoError(t, f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", line), &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var header = []interface{}{"Email", "first_name", "last_name", "school", "Mathematics", "english", "Physical Sciences", "Notes"}

func TestParseSheet(t *testing.T) {
	buf := workbook(t, map[int][]interface{}{
		1: header,
		2: {"Ann@Example.com", "Ann", "Lee", "Hill High", "75", "68%", "81", "top of class"},
		4: {"bad-email", "", "", "", "70"},
		5: {"b@example.com", "", "", "", "101"},
		6: {"c@example.com", "", "", "", "72.5"},
		7: {"d@example.com", "Dee"},
		8: {"e@example.com", "", "", "", "80.0", ""},
	})

	sheet, err := ParseSheet(buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Notes"}, sheet.Ignored)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, MarkRow{
		Line:      2,
		Email:     "ann@example.com",
		FirstName: "Ann",
		LastName:  "Lee",
		School:    "Hill High",
		Marks: scoring.MarkSet{
			scoring.Mathematics:      75,
			scoring.English:          68,
			scoring.PhysicalSciences: 81,
		},
	}, sheet.Rows[0])
	assert.Equal(t, 8, sheet.Rows[1].Line)
	assert.Equal(t, scoring.MarkSet{scoring.Mathematics: 80}, sheet.Rows[1].Marks)

	assert.Equal(t, []RowProblem{
		{Line: 4, Message: `invalid email "bad-email"`},
		{Line: 5, Message: "Mathematics: must be between 0 and 100"},
		{Line: 6, Message: `Mathematics: mark "72.5" is not a whole number`},
		{Line: 7, Message: "no marks recorded"},
	}, sheet.Problems)
}

func TestParseSheet_BadHeader(t *testing.T) {
	testCases := []struct {
		name    string
		rows    map[int][]interface{}
		wantErr string
	}{
		{
			name:    "no email column",
			rows:    map[int][]interface{}{1: {"name", "mathematics"}, 2: {"x", "50"}},
			wantErr: "missing required column: email",
		},
		{
			name:    "no subject columns",
			rows:    map[int][]interface{}{1: {"email", "latin"}, 2: {"a@b.c", "50"}},
			wantErr: "no subject columns found",
		},
		{
			name:    "header only",
			rows:    map[int][]interface{}{1: header},
			wantErr: errNoRows.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseSheet(workbook(t, tc.rows))
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
		})
	}
}

func TestParseSheet_NotAWorkbook(t *testing.T) {
	_, err := ParseSheet(bytes.NewBufferString("email,mathematics\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open workbook")
}

func TestImporter_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	students := repomocks.NewMockStudentRepository(ctrl)
	svc := services.NewStudentService(
		students,
		repomocks.NewMockCatalogRepository(ctrl),
		repomocks.NewMockQuizRepository(ctrl),
		nil,
		time.Second,
	)
	imp := &importer{students: students, service: svc, create: true}

	marks := scoring.MarkSet{scoring.Mathematics: 70}
	sheet := &Sheet{Rows: []MarkRow{
		{Line: 2, Email: "known@example.com", Marks: marks},
		{Line: 3, Email: "new@example.com", FirstName: "Nia", Marks: marks},
		{Line: 4, Email: "broken@example.com", Marks: marks},
	}}

	students.EXPECT().GetByEmail(gomock.Any(), "known@example.com").Return(&model.Student{ID: 1}, nil)
	students.EXPECT().UpdateMarks(gomock.Any(), uint(1), marks).Return(nil)

	students.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, repository.ErrNotFound)
	students.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *model.Student) error {
		assert.Equal(t, "Nia", s.FirstName)
		s.ID = 2
		return nil
	})
	students.EXPECT().UpdateMarks(gomock.Any(), uint(2), marks).Return(nil)

	students.EXPECT().GetByEmail(gomock.Any(), "broken@example.com").Return(nil, repository.ErrUnavailable)

	sum := imp.run(context.Background(), sheet)
	assert.Equal(t, summary{updated: 2, created: 1, skipped: 1}, sum)
}

func TestImporter_SkipsUnknownWithoutCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	students := repomocks.NewMockStudentRepository(ctrl)
	imp := &importer{students: students, create: false}

	students.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(nil, repository.ErrNotFound)

	created, err := imp.importRow(context.Background(), MarkRow{Email: "new@example.com", Marks: scoring.MarkSet{scoring.English: 60}})
	assert.False(t, created)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
