// Package domain holds the typed identifiers and core enumerations shared by
// every layer. Construct IDs via the Parse functions at trust boundaries;
// direct casting bypasses validation.
package domain

import (
	"database/sql/driver"

	"github.com/google/uuid"

	dErrors "certflow/pkg/domain-errors"
)

// UserID identifies an authenticated applicant.
type UserID uuid.UUID

// SessionID identifies an active wizard session.
type SessionID uuid.UUID

// ApplicationID identifies a persisted certification application.
type ApplicationID uuid.UUID

// Catalog identifiers are owned by the external role/course/program catalogs
// and are opaque strings on our side.
type (
	RoleID    string
	CourseID  string
	ProgramID string
)

func parseUUID(kind, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be empty", kind)
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "invalid %s", kind)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s cannot be nil", kind)
	}
	return u, nil
}

// ParseUserID constructs a UserID from external input.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID("user_id", s)
	return UserID(u), err
}

// ParseSessionID constructs a SessionID from external input.
func ParseSessionID(s string) (SessionID, error) {
	u, err := parseUUID("session_id", s)
	return SessionID(u), err
}

// ParseApplicationID constructs an ApplicationID from external input.
func ParseApplicationID(s string) (ApplicationID, error) {
	u, err := parseUUID("application_id", s)
	return ApplicationID(u), err
}

func (id UserID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsNil() bool     { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

func (id UserID) String() string        { return uuid.UUID(id).String() }
func (id SessionID) String() string     { return uuid.UUID(id).String() }
func (id ApplicationID) String() string { return uuid.UUID(id).String() }

func (id RoleID) String() string    { return string(id) }
func (id CourseID) String() string  { return string(id) }
func (id ProgramID) String() string { return string(id) }

// MarshalText lets uuid-backed IDs round-trip through JSON as plain strings.
func (id UserID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *UserID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id ApplicationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

func (id *ApplicationID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = ApplicationID(u)
	return nil
}

// Value and Scan let uuid-backed IDs pass through database drivers as text.

func (id UserID) Value() (driver.Value, error) { return id.String(), nil }

func (id *UserID) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = UserID(u)
	return nil
}

func (id ApplicationID) Value() (driver.Value, error) { return id.String(), nil }

func (id *ApplicationID) Scan(src any) error {
	var u uuid.UUID
	if err := u.Scan(src); err != nil {
		return err
	}
	*id = ApplicationID(u)
	return nil
}
