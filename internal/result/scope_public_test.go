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
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/user"
)

type ScopePublicTestSuite struct {
	suite.Suite

	technicianID uuid.UUID
}

func (s *ScopePublicTestSuite) SetupTest() {
	s.technicianID = uuid.New()
}

func (s *ScopePublicTestSuite) TestAllows() {
	technician := user.Principal{ID: s.technicianID, Role: user.RoleLabTechnician}
	doctor := user.Principal{ID: uuid.New(), Role: user.RoleDoctor}
	admin := user.Principal{ID: uuid.New(), Role: user.RoleAdmin}

	tests := []struct {
		name    string
		scope   result.Scope
		record  result.LabResult
		allowed bool
	}{
		{
			name:  "technician sees own upload in any status",
			scope: result.ScopeFor(technician),
			record: result.LabResult{
				Status:       result.StatusApproved,
				UploadedByID: s.technicianID,
			},
			allowed: true,
		},
		{
			name:  "technician blocked from another technician's upload",
			scope: result.ScopeFor(technician),
			record: result.LabResult{
				Status:       result.StatusPending,
				UploadedByID: uuid.New(),
			},
			allowed: false,
		},
		{
			name:  "doctor sees pending",
			scope: result.ScopeFor(doctor),
			record: result.LabResult{
				Status:       result.StatusPending,
				UploadedByID: uuid.New(),
			},
			allowed: true,
		},
		{
			name:  "doctor sees reviewed",
			scope: result.ScopeFor(doctor),
			record: result.LabResult{
				Status:       result.StatusReviewed,
				UploadedByID: uuid.New(),
			},
			allowed: true,
		},
		{
			name:  "doctor blocked from approved",
			scope: result.ScopeFor(doctor),
			record: result.LabResult{
				Status:       result.StatusApproved,
				UploadedByID: uuid.New(),
			},
			allowed: false,
		},
		{
			name:  "admin sees everything",
			scope: result.ScopeFor(admin),
			record: result.LabResult{
				Status:       result.StatusApproved,
				UploadedByID: uuid.New(),
			},
			allowed: true,
		},
		{
			name:  "status filter narrows within the role scope",
			scope: result.ScopeFor(doctor).WithStatus(result.StatusReviewed),
			record: result.LabResult{
				Status:       result.StatusPending,
				UploadedByID: uuid.New(),
			},
			allowed: false,
		},
		{
			name:  "status filter cannot widen the role scope",
			scope: result.ScopeFor(doctor).WithStatus(result.StatusApproved),
			record: result.LabResult{
				Status:       result.StatusApproved,
				UploadedByID: uuid.New(),
			},
			allowed: false,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			record := tc.record
			s.Equal(tc.allowed, tc.scope.Allows(&record))
		})
	}
}

func (s *ScopePublicTestSuite) TestParseStatus() {
	tests := []struct {
		name        string
		input       string
		expected    result.Status
		expectError bool
	}{
		{name: "pending", input: "Pending", expected: result.StatusPending},
		{name: "reviewed", input: "Reviewed", expected: result.StatusReviewed},
		{name: "approved", input: "Approved", expected: result.StatusApproved},
		{name: "wrong case", input: "pending", expectError: true},
		{name: "unknown", input: "Rejected", expectError: true},
		{name: "empty", input: "", expectError: true},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			parsed, err := result.ParseStatus(tc.input)

			if tc.expectError {
				s.Error(err)
				return
			}

			s.NoError(err)
			s.Equal(tc.expected, parsed)
		})
	}
}

func TestScopePublicTestSuite(t *testing.T) {
	suite.Run(t, new(ScopePublicTestSuite))
}
