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

// Package auth provides registration, login, logout, and profile API
// handlers.
package auth

import (
	"log/slog"

	"github.com/retr0h/labresult/internal/user"
)

// TokenIssuer creates signed identity tokens.
type TokenIssuer interface {
	Generate(
		signingKey string,
		subject string,
	) (string, error)
}

// Auth handles the authentication endpoints.
type Auth struct {
	userStore  user.Store
	tokens     TokenIssuer
	signingKey string
	logger     *slog.Logger
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	userStore user.Store,
	tokens TokenIssuer,
	signingKey string,
) *Auth {
	return &Auth{
		userStore:  userStore,
		tokens:     tokens,
		signingKey: signingKey,
		logger:     logger,
	}
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"omitempty,user_role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionData is the payload returned by register and login.
type sessionData struct {
	User  *user.User `json:"user"`
	Token string     `json:"token"`
}
