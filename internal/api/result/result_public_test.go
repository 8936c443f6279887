// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package result_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/labresult/internal/api/common"
	apiresult "github.com/retr0h/labresult/internal/api/result"
	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/result/mocks"
	"github.com/retr0h/labresult/internal/user"
)

type ResultPublicTestSuite struct {
	suite.Suite

	mockCtrl  *gomock.Controller
	mockStore *mocks.MockStore
	handler   *apiresult.Result
	echoInst  *echo.Echo

	technician *user.User
	doctor     *user.User
	admin      *user.User
}

func (s *ResultPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStore = mocks.NewMockStore(s.mockCtrl)
	s.handler = apiresult.New(
		slog.Default(),
		result.NewService(s.mockStore, slog.Default()),
	)
	s.echoInst = echo.New()

	s.technician = &user.User{ID: uuid.New(), Role: user.RoleLabTechnician}
	s.doctor = &user.User{ID: uuid.New(), Role: user.RoleDoctor}
	s.admin = &user.User{ID: uuid.New(), Role: user.RoleAdmin}
}

func (s *ResultPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ResultPublicTestSuite) newContext(
	method string,
	target string,
	body string,
	actor *user.User,
) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := s.echoInst.NewContext(req, rec)
	if actor != nil {
		common.SetUser(c, actor)
	}

	return c, rec
}

func (s *ResultPublicTestSuite) decodeEnvelope(
	rec *httptest.ResponseRecorder,
) (bool, string) {
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope.Success, envelope.Message
}

func (s *ResultPublicTestSuite) TestResultCreate() {
	tests := []struct {
		name         string
		body         string
		setupMocks   func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name: "success",
			body: `{"patientName":"Ada Lovelace","testType":"CBC","resultValue":"4.9"}`,
			setupMocks: func() {
				s.mockStore.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, r *result.LabResult) error {
						r.ID = uuid.New()
						return nil
					})
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, id uuid.UUID) (*result.LabResult, error) {
						return &result.LabResult{ID: id, Status: result.StatusPending}, nil
					})
			},
			expectedCode: http.StatusCreated,
			expectedMsg:  "Test result uploaded",
		},
		{
			name:         "missing required field",
			body:         `{"patientName":"Ada Lovelace","testType":"CBC"}`,
			setupMocks:   func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "malformed body",
			body:         `{not json`,
			setupMocks:   func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMocks()

			c, rec := s.newContext(http.MethodPost, "/api/results", tc.body, s.technician)
			s.Require().NoError(s.handler.ResultCreate(c))

			s.Equal(tc.expectedCode, rec.Code)
			if tc.expectedMsg != "" {
				_, message := s.decodeEnvelope(rec)
				s.Equal(tc.expectedMsg, message)
			}
		})
	}
}

func (s *ResultPublicTestSuite) TestResultCreateUnauthenticated() {
	c, rec := s.newContext(
		http.MethodPost,
		"/api/results",
		`{"patientName":"Ada","testType":"CBC","resultValue":"4.9"}`,
		nil,
	)
	s.Require().NoError(s.handler.ResultCreate(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ResultPublicTestSuite) TestResultList() {
	tests := []struct {
		name         string
		target       string
		actor        func() *user.User
		setupMocks   func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:   "success",
			target: "/api/results",
			actor:  func() *user.User { return s.doctor },
			setupMocks: func() {
				s.mockStore.EXPECT().
					List(gomock.Any(), gomock.Any()).
					Return([]result.LabResult{{ID: uuid.New()}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Results retrieved",
		},
		{
			name:   "with status filter",
			target: "/api/results?status=Pending",
			actor:  func() *user.User { return s.doctor },
			setupMocks: func() {
				s.mockStore.EXPECT().
					List(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ interface{}, scope result.Scope) ([]result.LabResult, error) {
						s.Require().NotNil(scope.Status)
						s.Equal(result.StatusPending, *scope.Status)
						return []result.LabResult{}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Results retrieved",
		},
		{
			name:         "invalid status filter",
			target:       "/api/results?status=bogus",
			actor:        func() *user.User { return s.doctor },
			setupMocks:   func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMocks()

			c, rec := s.newContext(http.MethodGet, tc.target, "", tc.actor())
			s.Require().NoError(s.handler.ResultList(c))

			s.Equal(tc.expectedCode, rec.Code)
			if tc.expectedMsg != "" {
				_, message := s.decodeEnvelope(rec)
				s.Equal(tc.expectedMsg, message)
			}
		})
	}
}

func (s *ResultPublicTestSuite) TestResultGet() {
	resultID := uuid.New()

	tests := []struct {
		name         string
		param        string
		actor        func() *user.User
		setupMocks   func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "success",
			param: resultID.String(),
			actor: func() *user.User { return s.admin },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusPending}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Result retrieved",
		},
		{
			name:  "not found",
			param: resultID.String(),
			actor: func() *user.User { return s.admin },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(nil, result.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "result not found",
		},
		{
			name:         "malformed id",
			param:        "not-a-uuid",
			actor:        func() *user.User { return s.admin },
			setupMocks:   func() {},
			expectedCode: http.StatusNotFound,
			expectedMsg:  "result not found",
		},
		{
			name:  "out of scope",
			param: resultID.String(),
			actor: func() *user.User { return s.doctor },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusApproved}, nil)
			},
			expectedCode: http.StatusForbidden,
			expectedMsg:  "insufficient permissions",
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMocks()

			c, rec := s.newContext(http.MethodGet, "/api/results/"+tc.param, "", tc.actor())
			c.SetParamNames("id")
			c.SetParamValues(tc.param)
			s.Require().NoError(s.handler.ResultGet(c))

			s.Equal(tc.expectedCode, rec.Code)
			if tc.expectedMsg != "" {
				_, message := s.decodeEnvelope(rec)
				s.Equal(tc.expectedMsg, message)
			}
		})
	}
}

func (s *ResultPublicTestSuite) TestResultStatusUpdate() {
	resultID := uuid.New()

	tests := []struct {
		name         string
		body         string
		actor        func() *user.User
		setupMocks   func()
		expectedCode int
		expectedMsg  string
	}{
		{
			name:  "doctor reviews pending result",
			body:  `{"status":"Reviewed"}`,
			actor: func() *user.User { return s.doctor },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusPending}, nil)
				s.mockStore.EXPECT().
					TransitionStatus(
						gomock.Any(),
						resultID,
						result.StatusPending,
						result.StatusReviewed,
						gomock.Any(),
					).
					Return(nil)
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusReviewed}, nil)
			},
			expectedCode: http.StatusOK,
			expectedMsg:  "Status updated",
		},
		{
			name:  "wrong role is forbidden",
			body:  `{"status":"Reviewed"}`,
			actor: func() *user.User { return s.technician },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusPending}, nil)
			},
			expectedCode: http.StatusForbidden,
			expectedMsg:  "insufficient permissions: only doctor can mark as Reviewed",
		},
		{
			name:  "role is checked before state",
			body:  `{"status":"Approved"}`,
			actor: func() *user.User { return s.doctor },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusPending}, nil)
			},
			expectedCode: http.StatusForbidden,
			expectedMsg:  "insufficient permissions: only admin can mark as Approved",
		},
		{
			name:  "wrong state is a bad request",
			body:  `{"status":"Approved"}`,
			actor: func() *user.User { return s.admin },
			setupMocks: func() {
				s.mockStore.EXPECT().
					GetByID(gomock.Any(), resultID).
					Return(&result.LabResult{ID: resultID, Status: result.StatusPending}, nil)
			},
			expectedCode: http.StatusBadRequest,
			expectedMsg:  "invalid status transition: only Reviewed results can be marked as Approved",
		},
		{
			name:         "unknown status fails validation",
			body:         `{"status":"Rejected"}`,
			actor:        func() *user.User { return s.doctor },
			setupMocks:   func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMocks()

			c, rec := s.newContext(
				http.MethodPatch,
				"/api/results/"+resultID.String()+"/status",
				tc.body,
				tc.actor(),
			)
			c.SetParamNames("id")
			c.SetParamValues(resultID.String())
			s.Require().NoError(s.handler.ResultStatusUpdate(c))

			s.Equal(tc.expectedCode, rec.Code)
			if tc.expectedMsg != "" {
				_, message := s.decodeEnvelope(rec)
				s.Equal(tc.expectedMsg, message)
			}
		})
	}
}

func TestResultPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ResultPublicTestSuite))
}
