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

package user_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apiuser "github.com/retr0h/labresult/internal/api/user"
	"github.com/retr0h/labresult/internal/user"
	usermocks "github.com/retr0h/labresult/internal/user/mocks"
)

type UserPublicTestSuite struct {
	suite.Suite

	mockCtrl      *gomock.Controller
	mockUserStore *usermocks.MockStore
	handler       *apiuser.User
	echoInst      *echo.Echo
}

func (s *UserPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserStore = usermocks.NewMockStore(s.mockCtrl)
	s.handler = apiuser.New(slog.Default(), s.mockUserStore)
	s.echoInst = echo.New()
}

func (s *UserPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *UserPublicTestSuite) TestUserList() {
	tests := []struct {
		name         string
		setupMocks   func()
		expectedCode int
		validateBody func(body []byte)
	}{
		{
			name: "success",
			setupMocks: func() {
				s.mockUserStore.EXPECT().
					List(gomock.Any()).
					Return([]user.User{
						{
							ID:           uuid.New(),
							Name:         "Ada Lovelace",
							Email:        "ada@example.com",
							PasswordHash: "$2a$10$secret",
							Role:         user.RoleDoctor,
						},
					}, nil)
			},
			expectedCode: http.StatusOK,
			validateBody: func(body []byte) {
				var envelope struct {
					Success bool   `json:"success"`
					Message string `json:"message"`
					Data    struct {
						Users []user.User `json:"users"`
					} `json:"data"`
				}
				s.Require().NoError(json.Unmarshal(body, &envelope))

				s.True(envelope.Success)
				s.Equal("Users retrieved", envelope.Message)
				s.Len(envelope.Data.Users, 1)
				s.NotContains(string(body), "secret")
			},
		},
		{
			name: "store failure",
			setupMocks: func() {
				s.mockUserStore.EXPECT().
					List(gomock.Any()).
					Return(nil, errors.New("connection refused"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMocks()

			req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
			rec := httptest.NewRecorder()
			c := s.echoInst.NewContext(req, rec)

			s.Require().NoError(s.handler.UserList(c))

			s.Equal(tc.expectedCode, rec.Code)
			if tc.validateBody != nil {
				tc.validateBody(rec.Body.Bytes())
			}
		})
	}
}

func TestUserPublicTestSuite(t *testing.T) {
	suite.Run(t, new(UserPublicTestSuite))
}
