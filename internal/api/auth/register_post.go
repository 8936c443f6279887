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

package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/labresult/internal/api/common"
	"github.com/retr0h/labresult/internal/user"
	"github.com/retr0h/labresult/internal/validation"
)

// RegisterPost creates a new user and returns it with a fresh token. The
// role defaults to lab_technician when omitted.
func (a *Auth) RegisterPost(
	c echo.Context,
) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return common.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	if errMsg, ok := validation.Struct(&req); !ok {
		return common.Fail(c, http.StatusBadRequest, errMsg)
	}

	role := user.DefaultRole
	if req.Role != "" {
		role, _ = user.ParseRole(req.Role)
	}

	hash, err := user.HashPassword(req.Password)
	if err != nil {
		a.logger.Error("password hashing failed", slog.String("error", err.Error()))
		return common.Internal(c)
	}

	u := &user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	ctx := c.Request().Context()
	if err := a.userStore.Create(ctx, u); err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return common.Fail(c, http.StatusBadRequest, "email already registered")
		}
		a.logger.Error("user creation failed", slog.String("error", err.Error()))
		return common.Internal(c)
	}

	token, err := a.tokens.Generate(a.signingKey, u.ID.String())
	if err != nil {
		a.logger.Error("token generation failed", slog.String("error", err.Error()))
		return common.Internal(c)
	}

	a.logger.Info(
		"user registered",
		slog.String("user_id", u.ID.String()),
		slog.String("role", string(u.Role)),
	)

	return common.OK(c, http.StatusCreated, "User registered", sessionData{
		User:  u,
		Token: token,
	})
}
