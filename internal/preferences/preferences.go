// Package preferences holds the applicant's persisted wizard preferences:
// the handful of selections that survive a reload.
package preferences

import (
	id "certflow/pkg/domain"
)

// Preferences is a partial record. Nil fields mean "no opinion": reads
// leave them unset and merges skip them, so a patch only touches the
// fields it carries.
type Preferences struct {
	Industry           *id.Industry           `json:"industry,omitempty"`
	CertificationLevel *id.CertificationLevel `json:"certificationLevel,omitempty"`
	DarkMode           *bool                  `json:"darkMode,omitempty"`
	LastVisitedStep    *int                   `json:"lastVisitedStep,omitempty"`
}

// Apply overlays the patch's set fields onto p, leaving the rest intact.
func (p *Preferences) Apply(patch Preferences) {
	if patch.Industry != nil {
		p.Industry = patch.Industry
	}
	if patch.CertificationLevel != nil {
		p.CertificationLevel = patch.CertificationLevel
	}
	if patch.DarkMode != nil {
		p.DarkMode = patch.DarkMode
	}
	if patch.LastVisitedStep != nil {
		p.LastVisitedStep = patch.LastVisitedStep
	}
}
