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

package common

import (
	"github.com/labstack/echo/v4"

	"github.com/retr0h/labresult/internal/user"
)

// ContextKeyUser is the echo context key holding the authenticated user.
const ContextKeyUser = "auth.user"

// SetUser attaches the authenticated user to the request context.
func SetUser(
	c echo.Context,
	u *user.User,
) {
	c.Set(ContextKeyUser, u)
}

// UserFrom returns the authenticated user attached by the auth middleware.
func UserFrom(
	c echo.Context,
) (*user.User, bool) {
	u, ok := c.Get(ContextKeyUser).(*user.User)
	return u, ok
}

// PrincipalFrom returns the authenticated principal attached by the auth
// middleware.
func PrincipalFrom(
	c echo.Context,
) (user.Principal, bool) {
	u, ok := UserFrom(c)
	if !ok {
		return user.Principal{}, false
	}

	return u.Principal(), true
}
