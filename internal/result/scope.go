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

package result

import (
	"github.com/google/uuid"

	"github.com/retr0h/labresult/internal/user"
)

// Scope is the role-dependent visibility predicate applied before any list
// or single-record read. All set fields are conjunctive.
type Scope struct {
	// UploaderID restricts to records uploaded by this user.
	UploaderID *uuid.UUID
	// Statuses restricts to records in any of these states. Empty means
	// no restriction.
	Statuses []Status
	// Status is an additional caller-supplied filter layered on top of the
	// role scope, never replacing it.
	Status *Status
}

// ScopeFor computes the visibility scope for a principal:
// lab technicians see only their own uploads (any status), doctors see
// Pending and Reviewed records (approved results leave their queue), and
// admins see everything.
func ScopeFor(
	principal user.Principal,
) Scope {
	switch principal.Role {
	case user.RoleLabTechnician:
		id := principal.ID
		return Scope{UploaderID: &id}
	case user.RoleDoctor:
		return Scope{Statuses: []Status{StatusPending, StatusReviewed}}
	}

	return Scope{}
}

// WithStatus returns a copy of the scope with the caller-supplied status
// filter applied conjunctively.
func (s Scope) WithStatus(
	status Status,
) Scope {
	s.Status = &status

	return s
}

// Allows applies the scope to a single record, the same predicate used for
// listing.
func (s Scope) Allows(
	r *LabResult,
) bool {
	if s.UploaderID != nil && r.UploadedByID != *s.UploaderID {
		return false
	}

	if len(s.Statuses) > 0 {
		found := false
		for _, st := range s.Statuses {
			if r.Status == st {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if s.Status != nil && r.Status != *s.Status {
		return false
	}

	return true
}
