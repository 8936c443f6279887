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

package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/labresult/internal/api/common"
	"github.com/retr0h/labresult/internal/authtoken"
	"github.com/retr0h/labresult/internal/user"
	usermocks "github.com/retr0h/labresult/internal/user/mocks"
)

const testSigningKey = "test-signing-key-for-middleware"

type MiddlewareTestSuite struct {
	suite.Suite

	mockCtrl      *gomock.Controller
	mockUserStore *usermocks.MockStore
	tokenManager  *authtoken.Token
	echoInst      *echo.Echo
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserStore = usermocks.NewMockStore(s.mockCtrl)
	s.tokenManager = authtoken.New(slog.Default())
	s.echoInst = echo.New()
}

func (s *MiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *MiddlewareTestSuite) generateToken(subject string) string {
	token, err := s.tokenManager.Generate(testSigningKey, subject)
	s.Require().NoError(err)

	return token
}

func (s *MiddlewareTestSuite) runMiddleware(
	mw echo.MiddlewareFunc,
	authHeader string,
	prepare func(echo.Context),
) (*httptest.ResponseRecorder, bool) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.echoInst.NewContext(req, rec)
	if prepare != nil {
		prepare(c)
	}

	reached := false
	next := func(_ echo.Context) error {
		reached = true
		return nil
	}

	s.Require().NoError(mw(next)(c))

	return rec, reached
}

func (s *MiddlewareTestSuite) TestAuthMiddleware() {
	userID := uuid.New()
	liveUser := &user.User{ID: userID, Role: user.RoleDoctor}

	tests := []struct {
		name         string
		authHeader   func() string
		setupMocks   func()
		expectedCode int
		reachesNext  bool
	}{
		{
			name:       "valid token and live user",
			authHeader: func() string { return "Bearer " + s.generateToken(userID.String()) },
			setupMocks: func() {
				s.mockUserStore.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(liveUser, nil)
			},
			expectedCode: http.StatusOK,
			reachesNext:  true,
		},
		{
			name:         "missing header",
			authHeader:   func() string { return "" },
			setupMocks:   func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong scheme",
			authHeader:   func() string { return "Basic abc123" },
			setupMocks:   func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage token",
			authHeader:   func() string { return "Bearer not-a-token" },
			setupMocks:   func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "token signed with another key",
			authHeader: func() string {
				other := authtoken.New(slog.Default())
				token, err := other.Generate("some-other-key", userID.String())
				s.Require().NoError(err)
				return "Bearer " + token
			},
			setupMocks:   func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "user deleted after token issued",
			authHeader: func() string { return "Bearer " + s.generateToken(userID.String()) },
			setupMocks: func() {
				s.mockUserStore.EXPECT().
					GetByID(gomock.Any(), userID).
					Return(nil, user.ErrNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			tc.setupMocks()

			mw := authMiddleware(s.tokenManager, testSigningKey, s.mockUserStore)
			rec, reached := s.runMiddleware(mw, tc.authHeader(), nil)

			s.Equal(tc.reachesNext, reached)
			if !tc.reachesNext {
				s.Equal(tc.expectedCode, rec.Code)
			}
		})
	}
}

func (s *MiddlewareTestSuite) TestAuthMiddlewareAttachesLiveRole() {
	userID := uuid.New()

	// The stored role wins over anything the caller believes the token
	// carries.
	s.mockUserStore.EXPECT().
		GetByID(gomock.Any(), userID).
		Return(&user.User{ID: userID, Role: user.RoleAdmin}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+s.generateToken(userID.String()))
	rec := httptest.NewRecorder()
	c := s.echoInst.NewContext(req, rec)

	mw := authMiddleware(s.tokenManager, testSigningKey, s.mockUserStore)
	s.Require().NoError(mw(func(c echo.Context) error {
		principal, ok := common.PrincipalFrom(c)
		s.True(ok)
		s.Equal(user.RoleAdmin, principal.Role)
		return nil
	})(c))
}

func (s *MiddlewareTestSuite) TestRoleMiddleware() {
	tests := []struct {
		name         string
		actor        *user.User
		allowed      []user.Role
		expectedCode int
		reachesNext  bool
	}{
		{
			name:        "role in allowed set",
			actor:       &user.User{ID: uuid.New(), Role: user.RoleAdmin},
			allowed:     []user.Role{user.RoleAdmin},
			reachesNext: true,
		},
		{
			name:         "role outside allowed set",
			actor:        &user.User{ID: uuid.New(), Role: user.RoleDoctor},
			allowed:      []user.Role{user.RoleAdmin},
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "no principal",
			actor:        nil,
			allowed:      []user.Role{user.RoleAdmin},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			mw := roleMiddleware(tc.allowed...)
			rec, reached := s.runMiddleware(mw, "", func(c echo.Context) {
				if tc.actor != nil {
					common.SetUser(c, tc.actor)
				}
			})

			s.Equal(tc.reachesNext, reached)
			if !tc.reachesNext {
				s.Equal(tc.expectedCode, rec.Code)
			}
		})
	}
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
