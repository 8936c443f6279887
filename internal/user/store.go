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

	"github.com/google/uuid"
)

//go:generate go tool mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Errors surfaced by credential stores.
var (
	// ErrNotFound indicates no user matches the lookup.
	ErrNotFound = errors.New("user not found")
	// ErrEmailTaken indicates a registration collided with an existing email.
	ErrEmailTaken = errors.New("email already registered")
)

// Store persists user identity records.
type Store interface {
	// Create inserts a new user. A duplicate email fails with ErrEmailTaken.
	Create(ctx context.Context, u *User) error
	// GetByID loads a user by id, failing with ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	// GetByEmail loads a user by normalized email, failing with ErrNotFound
	// if absent.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// List returns all users, most recently created first.
	List(ctx context.Context) ([]User, error)
}
