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
	"net/http"

	"github.com/retr0h/labresult/internal/user"
)

// Session is the user-plus-token payload returned by register and login.
type Session struct {
	User  user.User `json:"user"`
	Token string    `json:"token"`
}

// Register creates a new account via the REST API.
func (c *Client) Register(
	ctx context.Context,
	name string,
	email string,
	password string,
	role string,
) (*Session, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}
	if role != "" {
		body["role"] = role
	}

	var session Session
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Login authenticates and returns the session via the REST API.
func (c *Client) Login(
	ctx context.Context,
	email string,
	password string,
) (*Session, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var session Session
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// Logout discards the session server-side (a stateless acknowledgement).
func (c *Client) Logout(
	ctx context.Context,
) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}

// Profile retrieves the authenticated user via the REST API.
func (c *Client) Profile(
	ctx context.Context,
) (*user.User, error) {
	var data struct {
		User user.User `json:"user"`
	}
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, &data); err != nil {
		return nil, err
	}

	return &data.User, nil
}
