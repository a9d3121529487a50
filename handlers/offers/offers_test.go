package offers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/datatypes"

	"github.com/sahilchouksey/unimatch-api/model"
	repomocks "github.com/sahilchouksey/unimatch-api/repository/mocks"
	"github.com/sahilchouksey/unimatch-api/services"
	offerrules "github.com/sahilchouksey/unimatch-api/services/offers"
	"github.com/sahilchouksey/unimatch-api/utils/auth"
	"github.com/sahilchouksey/unimatch-api/utils/middleware"
)

var now = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type mocks struct {
	students     *repomocks.MockStudentRepository
	applications *repomocks.MockApplicationRepository
	offers       *repomocks.MockOfferRepository
}

func newTestApp(t *testing.T) (*fiber.App, mocks, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mocks{
		students:     repomocks.NewMockStudentRepository(ctrl),
		applications: repomocks.NewMockApplicationRepository(ctrl),
		offers:       repomocks.NewMockOfferRepository(ctrl),
	}
	svc := services.NewOfferService(m.students, m.applications, m.offers, offerrules.DefaultThresholds(), nil, time.Second,
		services.WithOfferClock(func() time.Time { return now }))

	jwtManager := auth.NewJWTManager(auth.JWTConfig{Secret: "test-secret"})
	h := NewOfferHandler(svc)

	app := fiber.New()
	me := app.Group("/me", middleware.NewAuthMiddleware(jwtManager, nil).Required())
	me.Post("/offers/generate", h.Generate)
	me.Get("/offers", h.List)
	me.Post("/offers/:id/accept", h.Accept)
	me.Post("/offers/:id/decline", h.Decline)
	me.Post("/offers/:id/documents", h.UploadDocument)

	token, err := jwtManager.Issue(7, "learner@example.com", auth.RoleStudent, time.Hour)
	require.NoError(t, err)
	return app, m, token
}

func send(t *testing.T, app *fiber.App, req *http.Request, token string) *http.Response {
	t.Helper()
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func offer(id uint, status model.OfferStatus, expiry time.Time) *model.Offer {
	return &model.Offer{
		ID:                 id,
		StudentID:          7,
		Type:               model.OfferTypeConditional,
		Conditions:         datatypes.NewJSONSlice([]string{"Submit final Grade 12 results"}),
		APS:                30,
		ExpiryDate:         datatypes.Date(expiry),
		AcceptanceDeadline: datatypes.Date(expiry),
		Status:             status,
	}
}

func TestOfferHandler_Respond(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		mock       func(m mocks)
		wantCode   int
		wantStatus model.OfferStatus
	}{
		{
			name: "accept active offer",
			path: "/me/offers/3/accept",
			mock: func(m mocks) {
				m.offers.EXPECT().GetForStudent(gomock.Any(), uint(3), uint(7)).
					Return(offer(3, model.OfferStatusActive, now.AddDate(0, 0, 10)), nil)
				m.offers.EXPECT().Respond(gomock.Any(), uint(3), uint(7), model.OfferStatusAccepted, offerrules.Today(now)).
					Return(true, nil)
			},
			wantCode:   fiber.StatusOK,
			wantStatus: model.OfferStatusAccepted,
		},
		{
			name: "decline active offer",
			path: "/me/offers/3/decline",
			mock: func(m mocks) {
				m.offers.EXPECT().GetForStudent(gomock.Any(), uint(3), uint(7)).
					Return(offer(3, model.OfferStatusActive, now.AddDate(0, 0, 10)), nil)
				m.offers.EXPECT().Respond(gomock.Any(), uint(3), uint(7), model.OfferStatusDeclined, offerrules.Today(now)).
					Return(true, nil)
			},
			wantCode:   fiber.StatusOK,
			wantStatus: model.OfferStatusDeclined,
		},
		{
			name: "accept after the acceptance deadline",
			path: "/me/offers/3/accept",
			mock: func(m mocks) {
				o := offer(3, model.OfferStatusActive, now.AddDate(0, 0, 10))
				o.AcceptanceDeadline = datatypes.Date(now.AddDate(0, 0, -2))
				m.offers.EXPECT().GetForStudent(gomock.Any(), uint(3), uint(7)).Return(o, nil)
			},
			wantCode: fiber.StatusConflict,
		},
		{
			name: "offer past its expiry date",
			path: "/me/offers/3/accept",
			mock: func(m mocks) {
				m.offers.EXPECT().GetForStudent(gomock.Any(), uint(3), uint(7)).
					Return(offer(3, model.OfferStatusActive, now.AddDate(0, 0, -1)), nil)
			},
			wantCode: fiber.StatusConflict,
		},
		{
			name: "lost the race with another response",
			path: "/me/offers/3/accept",
			mock: func(m mocks) {
				m.offers.EXPECT().GetForStudent(gomock.Any(), uint(3), uint(7)).
					Return(offer(3, model.OfferStatusActive, now.AddDate(0, 0, 10)), nil)
				m.offers.EXPECT().Respond(gomock.Any(), uint(3), uint(7), model.OfferStatusAccepted, gomock.Any()).
					Return(false, nil)
			},
			wantCode: fiber.StatusConflict,
		},
		{
			name:     "invalid id",
			path:     "/me/offers/abc/accept",
			mock:     func(m mocks) {},
			wantCode: fiber.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, m, token := newTestApp(t)
			tc.mock(m)

			resp := send(t, app, httptest.NewRequest(http.MethodPost, tc.path, nil), token)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
			if tc.wantCode != fiber.StatusOK {
				return
			}

			var body struct {
				Data model.Offer `json:"data"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.wantStatus, body.Data.Status)
			assert.NotNil(t, body.Data.RespondedAt)
		})
	}
}

func TestOfferHandler_List(t *testing.T) {
	app, m, token := newTestApp(t)
	m.offers.EXPECT().ListByStudent(gomock.Any(), uint(7)).Return([]model.Offer{
		*offer(1, model.OfferStatusActive, now.AddDate(0, 0, 5)),
		*offer(2, model.OfferStatusActive, now.AddDate(0, 0, -2)),
		*offer(3, model.OfferStatusDeclined, now.AddDate(0, 0, 5)),
	}, nil)

	resp := send(t, app, httptest.NewRequest(http.MethodGet, "/me/offers", nil), token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []model.Offer `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, model.OfferStatusActive, body.Data[0].Status)
	assert.Equal(t, model.OfferStatusExpired, body.Data[1].Status)
	assert.Equal(t, model.OfferStatusDeclined, body.Data[2].Status)
}

func TestOfferHandler_GenerateWithoutMarks(t *testing.T) {
	app, m, token := newTestApp(t)
	m.students.EXPECT().GetByID(gomock.Any(), uint(7)).Return(&model.Student{ID: 7}, nil)

	resp := send(t, app, httptest.NewRequest(http.MethodPost, "/me/offers/generate", nil), token)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func multipartRequest(t *testing.T, path string, fields map[string]string, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.Copy(part, bytes.NewReader(content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestOfferHandler_UploadDocument(t *testing.T) {
	testCases := []struct {
		name     string
		fields   map[string]string
		filename string
		wantCode int
	}{
		{
			name:     "missing condition",
			filename: "results.pdf",
			wantCode: fiber.StatusUnprocessableEntity,
		},
		{
			name:     "missing file",
			fields:   map[string]string{"condition": "Submit final Grade 12 results"},
			wantCode: fiber.StatusUnprocessableEntity,
		},
		{
			name:     "storage not configured",
			fields:   map[string]string{"condition": "Submit final Grade 12 results"},
			filename: "results.pdf",
			wantCode: fiber.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app, _, token := newTestApp(t)
			req := multipartRequest(t, "/me/offers/3/documents", tc.fields, tc.filename, []byte("%PDF-1.4\n%%EOF"))
			resp := send(t, app, req, token)
			assert.Equal(t, tc.wantCode, resp.StatusCode)
		})
	}
}
