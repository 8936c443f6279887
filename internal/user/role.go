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

package user

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is one of the three closed application roles. Per-operation
// eligibility is expressed as explicit allowed-role sets at the call sites
// rather than open-ended string comparison.
type Role string

// The full set of known roles.
const (
	RoleAdmin         Role = "admin"
	RoleDoctor        Role = "doctor"
	RoleLabTechnician Role = "lab_technician"
)

// DefaultRole is assigned on registration when no role is requested.
const DefaultRole = RoleLabTechnician

// AllRoles lists every known role.
var AllRoles = []Role{RoleAdmin, RoleDoctor, RoleLabTechnician}

// ParseRole parses s into a Role.
func ParseRole(
	s string,
) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleDoctor, RoleLabTechnician:
		return Role(s), nil
	}

	return "", fmt.Errorf("unsupported role: %s", s)
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// In reports whether the role is a member of the given allowed set.
func (r Role) In(
	allowed ...Role,
) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}

	return false
}

// Principal is the authenticated identity resolved from a request's token:
// the live user's id and role. It is passed explicitly through workflow
// operations so they stay testable apart from the transport.
type Principal struct {
	ID   uuid.UUID
	Role Role
}
