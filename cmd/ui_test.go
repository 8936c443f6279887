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

package cmd

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/user"
)

type UITestSuite struct {
	suite.Suite
}

func TestUITestSuite(t *testing.T) {
	suite.Run(t, new(UITestSuite))
}

func (suite *UITestSuite) TestCalculateColumnWidths() {
	tests := []struct {
		name       string
		headers    []string
		rows       [][]string
		minPadding int
		want       []int
	}{
		{
			name:       "when no headers returns empty",
			headers:    []string{},
			rows:       [][]string{},
			minPadding: 1,
			want:       []int{},
		},
		{
			name:       "when headers are widest uses header widths",
			headers:    []string{"HOSTNAME", "STATUS"},
			rows:       [][]string{{"a", "ok"}},
			minPadding: 1,
			want:       []int{10, 8},
		},
		{
			name:       "when cell is widest uses cell width",
			headers:    []string{"ID"},
			rows:       [][]string{{"0123456789"}},
			minPadding: 1,
			want:       []int{12},
		},
		{
			name:       "when cell is multiline uses longest line",
			headers:    []string{"NOTES"},
			rows:       [][]string{{"short\na much longer line"}},
			minPadding: 1,
			want:       []int{20},
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := calculateColumnWidths(tc.headers, tc.rows, tc.minPadding)

			assert.Equal(suite.T(), tc.want, got)
		})
	}
}

func (suite *UITestSuite) TestGetMaxLineWidth() {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "when empty returns zero",
			text: "",
			want: 0,
		},
		{
			name: "when single line returns its length",
			text: "hello",
			want: 5,
		},
		{
			name: "when multiline returns longest",
			text: "a\nlonger\nxx",
			want: 6,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := getMaxLineWidth(tc.text)

			assert.Equal(suite.T(), tc.want, got)
		})
	}
}

func (suite *UITestSuite) TestIdentityString() {
	tests := []struct {
		name     string
		identity *user.Identity
		want     string
	}{
		{
			name:     "when nil returns empty",
			identity: nil,
			want:     "",
		},
		{
			name:     "when set formats name and email",
			identity: &user.Identity{Name: "Ada Lovelace", Email: "ada@example.com"},
			want:     "Ada Lovelace <ada@example.com>",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := identityString(tc.identity)

			assert.Equal(suite.T(), tc.want, got)
		})
	}
}

func (suite *UITestSuite) TestTimeString() {
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		t    *time.Time
		want string
	}{
		{
			name: "when nil returns empty",
			t:    nil,
			want: "",
		},
		{
			name: "when set formats as RFC3339",
			t:    &ts,
			want: "2026-01-02T15:04:05Z",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			got := timeString(tc.t)

			assert.Equal(suite.T(), tc.want, got)
		})
	}
}

func (suite *UITestSuite) TestResultSection() {
	id := uuid.New()
	created := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	views := []result.View{
		{
			ID:          id,
			PatientName: "Ada Lovelace",
			TestType:    "CBC",
			ResultValue: "4.9",
			Status:      result.StatusPending,
			UploadedBy:  &user.Identity{Name: "Tech One", Email: "tech@example.com"},
			CreatedAt:   created,
		},
	}

	got := resultSection(views)

	assert.Equal(suite.T(), "Results", got.Title)
	assert.Equal(
		suite.T(),
		[]string{"ID", "PATIENT", "TEST", "VALUE", "STATUS", "UPLOADED BY", "CREATED"},
		got.Headers,
	)
	assert.Equal(suite.T(), [][]string{
		{
			id.String(),
			"Ada Lovelace",
			"CBC",
			"4.9",
			"Pending",
			"Tech One <tech@example.com>",
			"2026-01-02T15:04:05Z",
		},
	}, got.Rows)
}

func (suite *UITestSuite) TestUserSection() {
	id := uuid.New()
	created := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	users := []user.User{
		{
			ID:        id,
			Name:      "Ada Lovelace",
			Email:     "ada@example.com",
			Role:      user.RoleDoctor,
			CreatedAt: created,
		},
	}

	got := userSection(users)

	assert.Equal(suite.T(), "Users", got.Title)
	assert.Equal(suite.T(), []string{"ID", "NAME", "EMAIL", "ROLE", "CREATED"}, got.Headers)
	assert.Equal(suite.T(), [][]string{
		{id.String(), "Ada Lovelace", "ada@example.com", "doctor", "2026-01-02T15:04:05Z"},
	}, got.Rows)
}
