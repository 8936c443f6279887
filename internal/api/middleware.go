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

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/labresult/internal/api/common"
	"github.com/retr0h/labresult/internal/authtoken"
	"github.com/retr0h/labresult/internal/user"
)

// TokenValidator parses and validates JWT tokens.
type TokenValidator interface {
	Validate(
		tokenString string,
		signingKey string,
	) (*authtoken.CustomClaims, error)
}

// authMiddleware resolves the bearer token into a live user record and
// attaches it to the request context. The role is read from the stored
// record, never from the token, so a stale token cannot carry a stale role.
func authMiddleware(
	tokenManager TokenValidator,
	signingKey string,
	userStore user.Store,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return common.Fail(c, http.StatusUnauthorized, "bearer token required")
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokenManager.Validate(tokenString, signingKey)
			if err != nil {
				return common.Fail(c, http.StatusUnauthorized, "invalid token: "+err.Error())
			}

			u, err := userStore.GetByID(c.Request().Context(), claims.SubjectID())
			if err != nil {
				if errors.Is(err, user.ErrNotFound) {
					return common.Fail(c, http.StatusUnauthorized, "user no longer exists")
				}
				return common.Internal(c)
			}

			common.SetUser(c, u)

			return next(c)
		}
	}
}

// roleMiddleware rejects principals whose role is outside the allowed set.
// It assumes authMiddleware already ran on the route.
func roleMiddleware(
	allowed ...user.Role,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := common.PrincipalFrom(c)
			if !ok {
				return common.Fail(c, http.StatusUnauthorized, "bearer token required")
			}

			if !principal.Role.In(allowed...) {
				return common.Fail(c, http.StatusForbidden, "insufficient permissions")
			}

			return next(c)
		}
	}
}
