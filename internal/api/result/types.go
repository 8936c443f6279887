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

// Package result provides lab-result API handlers.
package result

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/retr0h/labresult/internal/api/common"
	"github.com/retr0h/labresult/internal/result"
)

// Result handles the lab-result endpoints.
type Result struct {
	service *result.Service
	logger  *slog.Logger
}

// New factory to create a new instance.
func New(
	logger *slog.Logger,
	service *result.Service,
) *Result {
	return &Result{
		service: service,
		logger:  logger,
	}
}

// CreateRequest is the body of POST /api/results.
type CreateRequest struct {
	PatientName    string `json:"patientName"    validate:"required"`
	PatientID      string `json:"patientId"`
	TestType       string `json:"testType"       validate:"required"`
	ResultValue    string `json:"resultValue"    validate:"required"`
	Unit           string `json:"unit"`
	ReferenceRange string `json:"referenceRange"`
	Notes          string `json:"notes"`
}

// StatusUpdateRequest is the body of PATCH /api/results/:id/status.
type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,result_status"`
}

// failFrom maps workflow errors to the response taxonomy. Unclassified
// errors are logged and hidden behind a generic 500.
func (r *Result) failFrom(
	c echo.Context,
	err error,
) error {
	var verr *result.ValidationError

	switch {
	case errors.Is(err, result.ErrNotFound):
		return common.Fail(c, http.StatusNotFound, "result not found")
	case errors.Is(err, result.ErrForbidden):
		return common.Fail(c, http.StatusForbidden, err.Error())
	case errors.Is(err, result.ErrInvalidTransition):
		return common.Fail(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &verr):
		return common.Fail(c, http.StatusBadRequest, verr.Error())
	default:
		r.logger.Error("result operation failed", slog.String("error", err.Error()))
		return common.Internal(c)
	}
}
