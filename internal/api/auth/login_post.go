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

// LoginPost authenticates by email and password and returns the user with a
// fresh token. Unknown email and wrong password are indistinguishable to the
// caller.
func (a *Auth) LoginPost(
	c echo.Context,
) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return common.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	if errMsg, ok := validation.Struct(&req); !ok {
		return common.Fail(c, http.StatusBadRequest, errMsg)
	}

	ctx := c.Request().Context()
	u, err := a.userStore.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return common.Fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		a.logger.Error("user lookup failed", slog.String("error", err.Error()))
		return common.Internal(c)
	}

	if !user.CheckPassword(u.PasswordHash, req.Password) {
		return common.Fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := a.tokens.Generate(a.signingKey, u.ID.String())
	if err != nil {
		a.logger.Error("token generation failed", slog.String("error", err.Error()))
		return common.Internal(c)
	}

	a.logger.Info("user logged in", slog.String("user_id", u.ID.String()))

	return common.OK(c, http.StatusOK, "Login successful", sessionData{
		User:  u,
		Token: token,
	})
}
