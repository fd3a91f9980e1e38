// Package models holds the read-only catalog entities the wizard selects
// from: certification programs, job roles and preparatory courses.
package models

import (
	id "certflow/pkg/domain"
)

// Program is a certification program offered by an external provider.
// Selecting one is gated on the applicant's certification level.
type Program struct {
	ID            id.ProgramID          `json:"id"`
	ProviderName  string                `json:"providerName"`
	ProgramName   string                `json:"programName"`
	URL           string                `json:"url"`
	RequiredLevel id.CertificationLevel `json:"requiredLevel"`
}

// Role is a job role an applicant certifies against.
type Role struct {
	ID   id.RoleID `json:"id"`
	Name string    `json:"name"`
}

// Course is a preparatory course whose completion date drives the
// application window and experience grace rules.
type Course struct {
	ID   id.CourseID `json:"id"`
	Name string      `json:"name"`
}
