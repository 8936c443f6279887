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

package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the database-backed credential store.
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

// Create implements Store.
func (s *GormStore) Create(
	ctx context.Context,
	u *User,
) error {
	err := s.db.WithContext(ctx).Create(u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}

	return nil
}

// GetByID implements Store.
func (s *GormStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

// GetByEmail implements Store. The email is normalized before lookup so the
// caller does not have to be.
func (s *GormStore) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	var u User
	err := s.db.WithContext(ctx).
		First(&u, "email = ?", NormalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &u, nil
}

// List implements Store.
func (s *GormStore) List(
	ctx context.Context,
) ([]User, error) {
	var users []User
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return users, nil
}
