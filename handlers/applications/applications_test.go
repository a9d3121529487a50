package applications

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	repomocks "github.com/sahilchouksey/unimatch-api/repository/mocks"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/utils/auth"
	"github.com/sahilchouksey/unimatch-api/utils/middleware"
)

func TestApplicationHandler_Apply(t *testing.T) {
	course := &model.Course{ID: 3, UniversityID: 9, Name: "BCom Accounting"}

	testCases := []struct {
		name     string
		body     string
		mock     func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository)
		wantCode int
	}{
		{
			name: "applied",
			body: `{"course_id":3}`,
			mock: func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository) {
				catalog.EXPECT().GetCourse(gomock.Any(), uint(3)).Return(course, nil)
				apps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: fiber.StatusCreated,
		},
		{
			name: "already applied",
			body: `{"course_id":3}`,
			mock: func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository) {
				catalog.EXPECT().GetCourse(gomock.Any(), uint(3)).Return(course, nil)
				apps.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.Wrap(repository.ErrDuplicate, "inserting application"))
			},
			wantCode: fiber.StatusConflict,
		},
		{
			name: "unknown course",
			body: `{"course_id":44}`,
			mock: func(apps *repomocks.MockApplicationRepository, catalog *repomocks.MockCatalogRepository) {
				catalog.EXPECT().GetCourse(gomock.Any(), uint(44)).Return(nil, errors.Wrap(repository.ErrNotFound, "finding course"))
			},
			wantCode: fiber.StatusNotFound,
		},
		{
			name:     "missing course",
			body:     `{}`,
			mock:     func(*repomocks.MockApplicationRepository, *repomocks.MockCatalogRepository) {},
			wantCode: fiber.StatusUnprocessableEntity,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			apps := repomocks.NewMockApplicationRepository(ctrl)
			catalog := repomocks.NewMockCatalogRepository(ctrl)
			tc.mock(apps, catalog)

			jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret"})
			h := NewApplicationHandler(services.NewApplicationService(apps, catalog, time.Second))
			app := fiber.New()
			app.Post("/me/applications", middleware.NewAuthMiddleware(jwtManager, nil).Required(), h.Apply)

			token, err := jwtManager.Issue(7, "learner@example.com", auth.RoleStudent, time.Hour)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/me/applications", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}
