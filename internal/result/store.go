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
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// Stamp records who performed a transition and when.
type Stamp struct {
	By uuid.UUID
	At time.Time
}

// Store persists lab results and answers scoped, sorted queries.
type Store interface {
	// Create inserts a new record.
	Create(ctx context.Context, r *LabResult) error
	// GetByID loads a record with actor identities expanded, failing with
	// ErrNotFound if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*LabResult, error)
	// List returns records matching the scope, most recently created first,
	// with actor identities expanded.
	List(ctx context.Context, scope Scope) ([]LabResult, error)
	// TransitionStatus moves a record from one status to another, stamping
	// the acting principal. The update is guarded on the expected current
	// status: if the record moved concurrently, it fails with
	// ErrInvalidTransition and no stamp is written.
	TransitionStatus(ctx context.Context, id uuid.UUID, from Status, to Status, stamp Stamp) error
}
