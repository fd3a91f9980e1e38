package models

import (
	"time"

	id "certflow/pkg/domain"
)

// Wizard step names, in order.
const (
	StepPersonalInfo       = "personal-info"
	StepCertificationLevel = "certification-level"
	StepApplicationDetails = "application-details"
	StepReview             = "review"
)

// Detail tab names, in order. Tabs partition the application-details step
// and never gate movement.
const (
	TabApplicationDetails = "application-details"
	TabRegulatoryExam     = "regulatory-exam"
	TabProgramDetails     = "program-details"
	TabCertificationScope = "certification-scope"
)

// WizardSteps and DetailTabs are the canonical orderings. Indexes held by a
// Session refer into these slices.
var (
	WizardSteps = []string{StepPersonalInfo, StepCertificationLevel, StepApplicationDetails, StepReview}
	DetailTabs  = []string{TabApplicationDetails, TabRegulatoryExam, TabProgramDetails, TabCertificationScope}
)

// Session is the per-applicant wizard state: the form being filled, the two
// independent position cursors, and the validation snapshot from the last
// form write.
type Session struct {
	UserID     id.UserID       `json:"userId"`
	Form       FormData        `json:"form"`
	Validation ValidationState `json:"validation"`

	StepIndex int `json:"stepIndex"`
	TabIndex  int `json:"tabIndex"`

	DeviceName string    `json:"deviceName,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewSession returns a fresh session positioned at the first step and tab.
func NewSession(userID id.UserID, now time.Time) *Session {
	return &Session{
		UserID:    userID,
		Form:      NewFormData(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// StepName returns the wizard step the session is on.
func (s *Session) StepName() string {
	return WizardSteps[s.StepIndex]
}

// TabName returns the detail tab the session is on.
func (s *Session) TabName() string {
	return DetailTabs[s.TabIndex]
}

// Reset returns the session to its initial state, discarding form data,
// validation and both cursors. Used after a successful submission.
func (s *Session) Reset(now time.Time) {
	s.Form = NewFormData()
	s.Validation = ValidationState{}
	s.StepIndex = 0
	s.TabIndex = 0
	s.UpdatedAt = now
}
