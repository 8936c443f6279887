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

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/labresult/internal/client"
	"github.com/retr0h/labresult/internal/config"
	"github.com/retr0h/labresult/internal/result"
)

type ClientPublicTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *ClientPublicTestSuite) SetupTest() {
	s.ctx = context.Background()
}

// newClient spins up a test server and returns a client pointed at it.
func (s *ClientPublicTestSuite) newClient(
	handler http.HandlerFunc,
) (*client.Client, *httptest.Server) {
	server := httptest.NewServer(handler)

	appConfig := config.Config{
		API: config.API{
			Client: config.Client{
				URL: server.URL,
				Security: config.ClientSecurity{
					BearerToken: "test-bearer-token",
				},
			},
		},
	}

	return client.New(slog.Default(), appConfig), server
}

func envelopeBody(
	message string,
	data interface{},
) []byte {
	body, _ := json.Marshal(map[string]interface{}{
		"success": true,
		"message": message,
		"data":    data,
	})

	return body
}

func (s *ClientPublicTestSuite) TestBearerTokenInjected() {
	var gotAuth string
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write(envelopeBody("Profile retrieved", map[string]interface{}{
			"user": map[string]string{"name": "Ada Lovelace"},
		}))
	})
	defer server.Close()

	_, err := c.Profile(s.ctx)

	s.NoError(err)
	s.Equal("Bearer test-bearer-token", gotAuth)
}

func (s *ClientPublicTestSuite) TestLogin() {
	userID := uuid.New()
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/api/auth/login", r.URL.Path)

		var body map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("ada@example.com", body["email"])

		_, _ = w.Write(envelopeBody("Login successful", map[string]interface{}{
			"user":  map[string]interface{}{"id": userID, "email": "ada@example.com"},
			"token": "issued-token",
		}))
	})
	defer server.Close()

	session, err := c.Login(s.ctx, "ada@example.com", "secret123")

	s.Require().NoError(err)
	s.Equal("issued-token", session.Token)
	s.Equal(userID, session.User.ID)
}

func (s *ClientPublicTestSuite) TestLoginFailure() {
	c, server := s.newClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"invalid credentials"}`))
	})
	defer server.Close()

	session, err := c.Login(s.ctx, "ada@example.com", "wrong")

	s.Nil(session)
	var apiErr *client.APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusUnauthorized, apiErr.StatusCode)
	s.Equal("invalid credentials", apiErr.Message)
	s.Contains(apiErr.Error(), "api error (401)")
}

func (s *ClientPublicTestSuite) TestCreateResult() {
	resultID := uuid.New()
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPost, r.Method)
		s.Equal("/api/results", r.URL.Path)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(envelopeBody("Test result uploaded", map[string]interface{}{
			"result": map[string]interface{}{
				"id":     resultID,
				"status": "Pending",
			},
		}))
	})
	defer server.Close()

	created, err := c.CreateResult(s.ctx, client.CreateResultInput{
		PatientName: "Ada Lovelace",
		TestType:    "CBC",
		ResultValue: "4.9",
	})

	s.Require().NoError(err)
	s.Equal(resultID, created.ID)
	s.Equal(result.StatusPending, created.Status)
}

func (s *ClientPublicTestSuite) TestListResults() {
	tests := []struct {
		name          string
		status        string
		expectedQuery string
	}{
		{name: "without filter", status: "", expectedQuery: ""},
		{name: "with filter", status: "Pending", expectedQuery: "Pending"},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
				s.Equal("/api/results", r.URL.Path)
				s.Equal(tc.expectedQuery, r.URL.Query().Get("status"))

				_, _ = w.Write(envelopeBody("Results retrieved", map[string]interface{}{
					"results": []map[string]interface{}{
						{"id": uuid.New(), "status": "Pending"},
					},
				}))
			})
			defer server.Close()

			results, err := c.ListResults(s.ctx, tc.status)

			s.Require().NoError(err)
			s.Len(results, 1)
		})
	}
}

func (s *ClientPublicTestSuite) TestGetResult() {
	resultID := uuid.New()
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/results/"+resultID.String(), r.URL.Path)

		_, _ = w.Write(envelopeBody("Result retrieved", map[string]interface{}{
			"result": map[string]interface{}{"id": resultID, "status": "Reviewed"},
		}))
	})
	defer server.Close()

	found, err := c.GetResult(s.ctx, resultID.String())

	s.Require().NoError(err)
	s.Equal(resultID, found.ID)
	s.Equal(result.StatusReviewed, found.Status)
}

func (s *ClientPublicTestSuite) TestUpdateResultStatus() {
	resultID := uuid.New()
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal(http.MethodPatch, r.Method)
		s.Equal("/api/results/"+resultID.String()+"/status", r.URL.Path)

		var body map[string]string
		s.Require().NoError(json.NewDecoder(r.Body).Decode(&body))
		s.Equal("Approved", body["status"])

		_, _ = w.Write(envelopeBody("Status updated", map[string]interface{}{
			"result": map[string]interface{}{"id": resultID, "status": "Approved"},
		}))
	})
	defer server.Close()

	updated, err := c.UpdateResultStatus(s.ctx, resultID.String(), "Approved")

	s.Require().NoError(err)
	s.Equal(result.StatusApproved, updated.Status)
}

func (s *ClientPublicTestSuite) TestListUsers() {
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/users", r.URL.Path)

		_, _ = w.Write(envelopeBody("Users retrieved", map[string]interface{}{
			"users": []map[string]interface{}{
				{"id": uuid.New(), "name": "Ada Lovelace", "role": "doctor"},
			},
		}))
	})
	defer server.Close()

	users, err := c.ListUsers(s.ctx)

	s.Require().NoError(err)
	s.Len(users, 1)
	s.Equal("Ada Lovelace", users[0].Name)
}

func (s *ClientPublicTestSuite) TestLogout() {
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/api/auth/logout", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true,"message":"Logged out"}`))
	})
	defer server.Close()

	s.NoError(c.Logout(s.ctx))
}

func (s *ClientPublicTestSuite) TestHealth() {
	c, server := s.newClient(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/health", r.URL.Path)

		// Liveness is a flat document, not the envelope.
		_, _ = w.Write([]byte(
			`{"status":"OK","timestamp":"2026-01-02T15:04:05Z","service":"labresult API"}`,
		))
	})
	defer server.Close()

	status, err := c.Health(s.ctx)

	s.Require().NoError(err)
	s.Equal("OK", status.Status)
	s.Equal("labresult API", status.Service)
}

func (s *ClientPublicTestSuite) TestHealthFailure() {
	c, server := s.newClient(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	defer server.Close()

	status, err := c.Health(s.ctx)

	s.Nil(status)
	var apiErr *client.APIError
	s.Require().True(errors.As(err, &apiErr))
	s.Equal(http.StatusServiceUnavailable, apiErr.StatusCode)
}

func TestClientPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ClientPublicTestSuite))
}
