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
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/retr0h/labresult/internal/api/common"
	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/validation"
)

// ResultStatusUpdate advances a result through the review workflow:
// doctor marks Pending results Reviewed, admin marks Reviewed results
// Approved. Role eligibility is reported before state eligibility.
func (r *Result) ResultStatusUpdate(
	c echo.Context,
) error {
	principal, ok := common.PrincipalFrom(c)
	if !ok {
		return common.Fail(c, http.StatusUnauthorized, "bearer token required")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.Fail(c, http.StatusNotFound, "result not found")
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return common.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	if errMsg, ok := validation.Struct(&req); !ok {
		return common.Fail(c, http.StatusBadRequest, errMsg)
	}

	// Validated against the full status set above; the workflow rejects
	// Pending as a target.
	target := result.Status(req.Status)

	updated, err := r.service.Transition(c.Request().Context(), principal, id, target)
	if err != nil {
		return r.failFrom(c, err)
	}

	return common.OK(c, http.StatusOK, "Status updated", map[string]interface{}{
		"result": updated.View(),
	})
}
