// Package models holds the applicant profile record.
package models

import (
	"time"

	id "certflow/pkg/domain"
)

// Profile is the identity record the wizard seeds its personal-info step
// from. Email is owned by the identity provider and is read-only here.
type Profile struct {
	UserID    id.UserID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Update is a partial profile change. Nil fields are left untouched.
type Update struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}
