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
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/retr0h/labresult/internal/user"
)

// CreateInput carries the fields for a new lab result. Optional fields pass
// through trimmed if present.
type CreateInput struct {
	PatientName    string
	PatientID      string
	TestType       string
	ResultValue    string
	Unit           string
	ReferenceRange string
	Notes          string
}

// transitionRules maps each reachable target status to the single role
// allowed to perform it and the state the record must currently be in.
// Pending is never a target. The matrix is closed: anything absent here is
// not a transition.
var transitionRules = map[Status]struct {
	role user.Role
	from Status
}{
	StatusReviewed: {role: user.RoleDoctor, from: StatusPending},
	StatusApproved: {role: user.RoleAdmin, from: StatusReviewed},
}

// Service is the workflow engine: it validates transitions, enforces the
// role-to-transition mapping, stamps the acting principal, and persists.
type Service struct {
	store  Store
	logger *slog.Logger
	// now is swappable for tests.
	now func() time.Time
}

// NewService factory to create a new instance.
func NewService(
	store Store,
	logger *slog.Logger,
) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the input and persists a new Pending record owned by the
// principal. Route-level role gating has already restricted this to lab
// technicians; the operation itself trusts its caller.
func (s *Service) Create(
	ctx context.Context,
	principal user.Principal,
	input CreateInput,
) (*LabResult, error) {
	r := &LabResult{
		PatientName:    strings.TrimSpace(input.PatientName),
		PatientID:      strings.TrimSpace(input.PatientID),
		TestType:       strings.TrimSpace(input.TestType),
		ResultValue:    strings.TrimSpace(input.ResultValue),
		Unit:           strings.TrimSpace(input.Unit),
		ReferenceRange: strings.TrimSpace(input.ReferenceRange),
		Notes:          strings.TrimSpace(input.Notes),
		Status:         StatusPending,
		UploadedByID:   principal.ID,
	}

	// Report the first failing field, matching the order they are declared.
	switch {
	case r.PatientName == "":
		return nil, requiredField("patientName")
	case r.TestType == "":
		return nil, requiredField("testType")
	case r.ResultValue == "":
		return nil, requiredField("resultValue")
	}

	if err := s.store.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("creating result: %w", err)
	}

	s.logger.Info(
		"result created",
		slog.String("result_id", r.ID.String()),
		slog.String("uploaded_by", principal.ID.String()),
	)

	// Reload with the uploader identity expanded for display.
	return s.store.GetByID(ctx, r.ID)
}

// Transition moves a record to the target status on behalf of the principal.
// Role eligibility is checked before the current state: a wrong-role request
// on a wrong-status record reports ErrForbidden, not ErrInvalidTransition.
func (s *Service) Transition(
	ctx context.Context,
	principal user.Principal,
	id uuid.UUID,
	target Status,
) (*LabResult, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rule, ok := transitionRules[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a transition target", ErrInvalidTransition, target)
	}

	if principal.Role != rule.role {
		return nil, fmt.Errorf(
			"%w: only %s can mark as %s", ErrForbidden, rule.role, target,
		)
	}

	if r.Status != rule.from {
		return nil, fmt.Errorf(
			"%w: only %s results can be marked as %s", ErrInvalidTransition, rule.from, target,
		)
	}

	stamp := Stamp{By: principal.ID, At: s.now().UTC()}
	if err := s.store.TransitionStatus(ctx, id, rule.from, target, stamp); err != nil {
		return nil, err
	}

	s.logger.Info(
		"result transitioned",
		slog.String("result_id", id.String()),
		slog.String("status", target.String()),
		slog.String("actor", principal.ID.String()),
	)

	return s.store.GetByID(ctx, id)
}

// Get loads a single record and applies the same visibility predicate as
// listing: a lab technician may only fetch their own upload, a doctor only
// Pending or Reviewed records, an admin anything.
func (s *Service) Get(
	ctx context.Context,
	principal user.Principal,
	id uuid.UUID,
) (*LabResult, error) {
	r, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ScopeFor(principal).Allows(r) {
		return nil, ErrForbidden
	}

	return r, nil
}

// List returns the records visible to the principal, most recent first. A
// caller-supplied status filter narrows the role scope; it never widens it.
func (s *Service) List(
	ctx context.Context,
	principal user.Principal,
	status *Status,
) ([]LabResult, error) {
	scope := ScopeFor(principal)
	if status != nil {
		scope = scope.WithStatus(*status)
	}

	return s.store.List(ctx, scope)
}
