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
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the database-backed result store.
type GormStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormStore factory to create a new instance.
func NewGormStore(
	db *gorm.DB,
	logger *slog.Logger,
) *GormStore {
	return &GormStore{
		db:     db,
		logger: logger,
	}
}

// withIdentities expands uploader, reviewer, and approver for display.
func (s *GormStore) withIdentities(
	ctx context.Context,
) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Uploader").
		Preload("Reviewer").
		Preload("Approver")
}

// Create implements Store.
func (s *GormStore) Create(
	ctx context.Context,
	r *LabResult,
) error {
	return s.db.WithContext(ctx).Create(r).Error
}

// GetByID implements Store.
func (s *GormStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*LabResult, error) {
	var r LabResult
	err := s.withIdentities(ctx).First(&r, "lab_results.id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &r, nil
}

// List implements Store.
func (s *GormStore) List(
	ctx context.Context,
	scope Scope,
) ([]LabResult, error) {
	q := s.withIdentities(ctx)

	if scope.UploaderID != nil {
		q = q.Where("uploaded_by_id = ?", *scope.UploaderID)
	}
	if len(scope.Statuses) > 0 {
		q = q.Where("status IN ?", scope.Statuses)
	}
	if scope.Status != nil {
		q = q.Where("status = ?", *scope.Status)
	}

	var results []LabResult
	err := q.Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}

	return results, nil
}

// TransitionStatus implements Store. The WHERE clause carries the expected
// current status so a concurrently-moved record loses the race cleanly
// instead of having its reviewer or approver stamp clobbered.
func (s *GormStore) TransitionStatus(
	ctx context.Context,
	id uuid.UUID,
	from Status,
	to Status,
	stamp Stamp,
) error {
	updates := map[string]any{
		"status":     to,
		"updated_at": stamp.At,
	}
	switch to {
	case StatusReviewed:
		updates["reviewed_by_id"] = stamp.By
		updates["reviewed_at"] = stamp.At
	case StatusApproved:
		updates["approved_by_id"] = stamp.By
		updates["approved_at"] = stamp.At
	default:
		return fmt.Errorf("%w: %s is not a transition target", ErrInvalidTransition, to)
	}

	tx := s.db.WithContext(ctx).
		Model(&LabResult{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: record changed concurrently", ErrInvalidTransition)
	}

	return nil
}
