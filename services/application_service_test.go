package services

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	repomocks "github.com/sahilchouksey/unimatch-api/repository/mocks"
	"github.com/sahilchouksey/unimatch-api/services/eligibility"
)

func TestApplicationService_Apply(t *testing.T) {
	course := &model.Course{ID: 3, UniversityID: 9, Name: "BCom Accounting", University: model.University{ID: 9, Code: "UJ"}}

	testCases := []struct {
		name    string
		mock    func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository)
		wantErr error
	}{
		{
			name: "pending application at the course's university",
			mock: func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository) {
				catalog.EXPECT().GetCourse(gomock.Any(), uint(3)).Return(course, nil)
				apps.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *model.Application) error {
					assert.Equal(t, uint(9), a.UniversityID)
					assert.Equal(t, model.ApplicationStatusPending, a.Status)
					a.ID = 11
					return nil
				})
			},
		},
		{
			name: "second application for the same course",
			mock: func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository) {
				catalog.EXPECT().GetCourse(gomock.Any(), uint(3)).Return(course, nil)
				apps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Wrap(repository.ErrDuplicate, "inserting application"))
			},
			wantErr: repository.ErrDuplicate,
		},
		{
			name: "unknown course",
			mock: func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository) {
				catalog.EXPECT().GetCourse(gomock.Any(), uint(3)).Return(nil, errors.Wrap(repository.ErrNotFound, "finding course"))
			},
			wantErr: repository.ErrNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			apps := repomocks.NewMockApplicationRepository(ctrl)
			catalog := repomocks.NewMockCatalogRepository(ctrl)
			tc.mock(apps, catalog)

			app, err := NewApplicationService(apps, catalog, time.Second).Apply(context.Background(), 7, 3)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(11), app.ID)
			assert.Equal(t, "UJ", app.University.Code)
		})
	}
}

func TestCatalogService_RejectsInvalidRequirements(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := repomocks.NewMockCatalogRepository(ctrl)
	svc := NewCatalogService(catalog, time.Second)

	err := svc.UpdateCourseRequirements(context.Background(), 1, eligibility.RequirementSet{MinimumAPS: eligibility.Int(60)})
	assert.Error(t, err)

	err = svc.CreateBursary(context.Background(), &model.Bursary{
		Name:         "Broken",
		Requirements: datatypes.NewJSONType(eligibility.RequirementSet{English: eligibility.Int(120)}),
	})
	assert.Error(t, err)

	catalog.EXPECT().UpdateCourseRequirements(gomock.Any(), uint(1), gomock.Any()).Return(nil)
	assert.NoError(t, svc.UpdateCourseRequirements(context.Background(), 1, eligibility.RequirementSet{Mathematics: eligibility.Int(60)}))
}

func TestCatalogService_CreateCourse(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := repomocks.NewMockCatalogRepository(ctrl)
	svc := NewCatalogService(catalog, time.Second)

	catalog.EXPECT().GetUniversity(gomock.Any(), uint(4)).Return(nil, errors.Wrap(repository.ErrNotFound, "finding university"))
	err := svc.CreateCourse(context.Background(), &model.Course{UniversityID: 4, Name: "LLB", Code: "LLB"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	catalog.EXPECT().GetUniversity(gomock.Any(), uint(2)).Return(&model.University{ID: 2}, nil)
	catalog.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, svc.CreateCourse(context.Background(), &model.Course{UniversityID: 2, Name: "LLB", Code: "LLB"}))
}
