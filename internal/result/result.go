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

// Package result implements the lab-result workflow: the record itself, its
// status state machine, role-scoped visibility, and persistence.
package result

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/retr0h/labresult/internal/user"
)

// LabResult is the workflow entity. The uploader is set at creation and
// never changes; reviewer and approver are stamped exactly once by their
// respective transitions.
type LabResult struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PatientName    string    `gorm:"not null"`
	PatientID      string
	TestType       string `gorm:"not null"`
	ResultValue    string `gorm:"not null"`
	Unit           string
	ReferenceRange string
	Notes          string
	Status         Status    `gorm:"type:varchar(16);not null;default:'Pending';index"`
	UploadedByID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewedByID   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt     *time.Time
	ApprovedByID   *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt     *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`

	Uploader *user.User `gorm:"foreignKey:UploadedByID"`
	Reviewer *user.User `gorm:"foreignKey:ReviewedByID"`
	Approver *user.User `gorm:"foreignKey:ApprovedByID"`
}

// BeforeCreate assigns an id when the database default is not in play.
func (r *LabResult) BeforeCreate(
	_ *gorm.DB,
) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	return nil
}

// View is the wire representation of a LabResult with actor identities
// expanded for display.
type View struct {
	ID             uuid.UUID      `json:"id"`
	PatientName    string         `json:"patientName"`
	PatientID      string         `json:"patientId,omitempty"`
	TestType       string         `json:"testType"`
	ResultValue    string         `json:"resultValue"`
	Unit           string         `json:"unit,omitempty"`
	ReferenceRange string         `json:"referenceRange,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Status         Status         `json:"status"`
	UploadedBy     *user.Identity `json:"uploadedBy,omitempty"`
	ReviewedBy     *user.Identity `json:"reviewedBy,omitempty"`
	ReviewedAt     *time.Time     `json:"reviewedAt,omitempty"`
	ApprovedBy     *user.Identity `json:"approvedBy,omitempty"`
	ApprovedAt     *time.Time     `json:"approvedAt,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// View renders the record for the wire.
func (r *LabResult) View() View {
	v := View{
		ID:             r.ID,
		PatientName:    r.PatientName,
		PatientID:      r.PatientID,
		TestType:       r.TestType,
		ResultValue:    r.ResultValue,
		Unit:           r.Unit,
		ReferenceRange: r.ReferenceRange,
		Notes:          r.Notes,
		Status:         r.Status,
		ReviewedAt:     r.ReviewedAt,
		ApprovedAt:     r.ApprovedAt,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}

	if r.Uploader != nil {
		id := r.Uploader.Identity()
		v.UploadedBy = &id
	}
	if r.Reviewer != nil {
		id := r.Reviewer.Identity()
		v.ReviewedBy = &id
	}
	if r.Approver != nil {
		id := r.Approver.Identity()
		v.ApprovedBy = &id
	}

	return v
}

// Views renders a slice of records.
func Views(
	results []LabResult,
) []View {
	views := make([]View, 0, len(results))
	for i := range results {
		views = append(views, results[i].View())
	}

	return views
}
