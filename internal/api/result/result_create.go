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
	"github.com/retr0h/labresult/internal/validation"
)

// ResultCreate uploads a new test result. Route-level role gating restricts
// this to lab technicians; the record starts Pending and is owned by the
// uploader.
func (r *Result) ResultCreate(
	c echo.Context,
) error {
	principal, ok := common.PrincipalFrom(c)
	if !ok {
		return common.Fail(c, http.StatusUnauthorized, "bearer token required")
	}

	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return common.Fail(c, http.StatusBadRequest, "invalid request body")
	}

	if errMsg, ok := validation.Struct(&req); !ok {
		return common.Fail(c, http.StatusBadRequest, errMsg)
	}

	created, err := r.service.Create(c.Request().Context(), principal, result.CreateInput{
		PatientName:    req.PatientName,
		PatientID:      req.PatientID,
		TestType:       req.TestType,
		ResultValue:    req.ResultValue,
		Unit:           req.Unit,
		ReferenceRange: req.ReferenceRange,
		Notes:          req.Notes,
	})
	if err != nil {
		return r.failFrom(c, err)
	}

	return common.OK(c, http.StatusCreated, "Test result uploaded", map[string]interface{}{
		"result": created.View(),
	})
}
