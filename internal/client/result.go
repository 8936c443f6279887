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
	"net/url"

	"github.com/retr0h/labresult/internal/result"
)

// CreateResultInput carries the fields of a new test result upload.
type CreateResultInput struct {
	PatientName    string `json:"patientName"`
	PatientID      string `json:"patientId,omitempty"`
	TestType       string `json:"testType"`
	ResultValue    string `json:"resultValue"`
	Unit           string `json:"unit,omitempty"`
	ReferenceRange string `json:"referenceRange,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// resultData wraps a single result payload.
type resultData struct {
	Result result.View `json:"result"`
}

// CreateResult uploads a new test result via the REST API.
func (c *Client) CreateResult(
	ctx context.Context,
	input CreateResultInput,
) (*result.View, error) {
	var data resultData
	if _, err := c.do(ctx, http.MethodPost, "/api/results", input, &data); err != nil {
		return nil, err
	}

	return &data.Result, nil
}

// ListResults retrieves results, optionally filtered by status, via the REST API.
func (c *Client) ListResults(
	ctx context.Context,
	status string,
) ([]result.View, error) {
	path := "/api/results"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}

	var data struct {
		Results []result.View `json:"results"`
	}
	if _, err := c.do(ctx, http.MethodGet, path, nil, &data); err != nil {
		return nil, err
	}

	return data.Results, nil
}

// GetResult retrieves a specific result by id via the REST API.
func (c *Client) GetResult(
	ctx context.Context,
	id string,
) (*result.View, error) {
	var data resultData
	if _, err := c.do(ctx, http.MethodGet, "/api/results/"+url.PathEscape(id), nil, &data); err != nil {
		return nil, err
	}

	return &data.Result, nil
}

// UpdateResultStatus advances a result's workflow status via the REST API.
func (c *Client) UpdateResultStatus(
	ctx context.Context,
	id string,
	status string,
) (*result.View, error) {
	body := map[string]string{"status": status}

	var data resultData
	path := "/api/results/" + url.PathEscape(id) + "/status"
	if _, err := c.do(ctx, http.MethodPatch, path, body, &data); err != nil {
		return nil, err
	}

	return &data.Result, nil
}
