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
	"fmt"
)

// Status is a lab result's position in the review workflow. Transitions are
// strictly linear and forward-only: Pending -> Reviewed -> Approved.
type Status string

// Workflow states. Pending is the sole initial state; Approved is terminal.
const (
	StatusPending  Status = "Pending"
	StatusReviewed Status = "Reviewed"
	StatusApproved Status = "Approved"
)

// AllStatuses lists every workflow state.
var AllStatuses = []Status{StatusPending, StatusReviewed, StatusApproved}

// ParseStatus parses s into a Status.
func ParseStatus(
	s string,
) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusReviewed, StatusApproved:
		return Status(s), nil
	}

	return "", fmt.Errorf("unsupported status: %s", s)
}

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }
