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

	"github.com/labstack/echo/v4"

	"github.com/retr0h/labresult/internal/api/common"
	"github.com/retr0h/labresult/internal/result"
)

// ResultList returns the results visible to the principal, most recent
// first. An optional `status` query parameter narrows the role scope.
func (r *Result) ResultList(
	c echo.Context,
) error {
	principal, ok := common.PrincipalFrom(c)
	if !ok {
		return common.Fail(c, http.StatusUnauthorized, "bearer token required")
	}

	var statusFilter *result.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, err := result.ParseStatus(raw)
		if err != nil {
			return common.Fail(c, http.StatusBadRequest, err.Error())
		}
		statusFilter = &status
	}

	results, err := r.service.List(c.Request().Context(), principal, statusFilter)
	if err != nil {
		return r.failFrom(c, err)
	}

	return common.OK(c, http.StatusOK, "Results retrieved", map[string]interface{}{
		"results": result.Views(results),
	})
}
