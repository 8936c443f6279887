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

// Package user holds identity records and their credential store.
package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is an identity record. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `json:"name"      gorm:"not null"`
	Email        string    `json:"email"     gorm:"not null;uniqueIndex"`
	PasswordHash string    `json:"-"         gorm:"column:password_hash;not null"`
	Role         Role      `json:"role"      gorm:"type:varchar(32);not null;index"`
	CreatedAt    time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate normalizes identity fields before first write. Mirrors the
// unique-email constraint: two spellings of one address collapse to one row.
func (u *User) BeforeCreate(
	_ *gorm.DB,
) error {
	u.Name = NormalizeName(u.Name)
	u.Email = NormalizeEmail(u.Email)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	return nil
}

// Identity is the subset of a user safe to embed in other payloads
// (uploader/reviewer/approver expansion).
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// Identity returns the display subset of the user.
func (u *User) Identity() Identity {
	return Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// Principal returns the authenticated-identity view of the user.
func (u *User) Principal() Principal {
	return Principal{
		ID:   u.ID,
		Role: u.Role,
	}
}
