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

package client

import (
	"context"

	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/user"
)

// CombinedHandler is a superset of all smaller handler interfaces.
type CombinedHandler interface {
	AuthHandler
	ResultHandler
	UserHandler
	HealthHandler
}

// AuthHandler defines an interface for interacting with auth client operations.
type AuthHandler interface {
	// Register creates a new account via the REST API.
	Register(
		ctx context.Context,
		name string,
		email string,
		password string,
		role string,
	) (*Session, error)
	// Login authenticates and returns the session via the REST API.
	Login(
		ctx context.Context,
		email string,
		password string,
	) (*Session, error)
	// Logout discards the session server-side (a stateless acknowledgement).
	Logout(
		ctx context.Context,
	) error
	// Profile retrieves the authenticated user via the REST API.
	Profile(
		ctx context.Context,
	) (*user.User, error)
}

// ResultHandler defines an interface for interacting with result client operations.
type ResultHandler interface {
	// CreateResult uploads a new test result via the REST API.
	CreateResult(
		ctx context.Context,
		input CreateResultInput,
	) (*result.View, error)
	// ListResults retrieves results, optionally filtered by status, via the REST API.
	ListResults(
		ctx context.Context,
		status string,
	) ([]result.View, error)
	// GetResult retrieves a specific result by id via the REST API.
	GetResult(
		ctx context.Context,
		id string,
	) (*result.View, error)
	// UpdateResultStatus advances a result's workflow status via the REST API.
	UpdateResultStatus(
		ctx context.Context,
		id string,
		status string,
	) (*result.View, error)
}

// UserHandler defines an interface for interacting with user client operations.
type UserHandler interface {
	// ListUsers retrieves all users via the REST API.
	ListUsers(
		ctx context.Context,
	) ([]user.User, error)
}

// HealthHandler defines an interface for interacting with health client operations.
type HealthHandler interface {
	// Health gets the liveness API endpoint.
	Health(
		ctx context.Context,
	) (*HealthStatus, error)
}
