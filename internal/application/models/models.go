// Package models holds the persisted certification-application record.
package models

import (
	"time"

	id "certflow/pkg/domain"
)

// Status values for an application record. The wizard only ever creates
// submitted records; the review pipeline moves them onward.
const (
	StatusSubmitted = "submitted"
)

// Application is the durable record a completed wizard run produces.
type Application struct {
	ID                      id.ApplicationID      `json:"id"`
	UserID                  id.UserID             `json:"userId"`
	RoleID                  id.RoleID             `json:"roleId"`
	Industry                id.Industry           `json:"industry"`
	CertificationLevel      id.CertificationLevel `json:"certificationLevel"`
	TotalExperienceYears    int                   `json:"totalExperienceYears"`
	SegmentExperienceYears  int                   `json:"segmentExperienceYears"`
	Status                  string                `json:"status"`
	CreatedAt               time.Time             `json:"createdAt"`
}
