// Package models holds the wizard's form aggregate and validation types.
package models

import (
	"slices"

	id "certflow/pkg/domain"
)

// FormData is the application record being built across wizard steps. It has
// a single owner, the active wizard session; no concurrent writers exist.
type FormData struct {
	// Identity fields, seeded from the profile record on first load.
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	CertificationLevel id.CertificationLevel `json:"certificationLevel"`
	YearsOfExperience  int                   `json:"yearsOfExperience"`

	// Application details. Amount is the experience-years answer exactly as
	// the applicant typed it; Timeline is the course-completion date as an
	// ISO date string.
	Purpose  string      `json:"purpose"`
	Amount   string      `json:"amount"`
	Timeline string      `json:"timeline"`
	Industry id.Industry `json:"industry"`

	// TSCsCovered is the percentage of technical skill competencies the
	// applicant can evidence, 0-100.
	TSCsCovered int `json:"tscsCovered"`

	SelectedRole     id.RoleID      `json:"selectedRole"`
	SelectedCourse   id.CourseID    `json:"selectedCourse"`
	SelectedPrograms []id.ProgramID `json:"selectedPrograms"`
}

// NewFormData returns the empty defaults the wizard starts from and resets
// to after submission.
func NewFormData() FormData {
	return FormData{SelectedPrograms: []id.ProgramID{}}
}

// HasProgram reports whether the program is already selected.
func (f *FormData) HasProgram(programID id.ProgramID) bool {
	return slices.Contains(f.SelectedPrograms, programID)
}

// AddProgram adds a program to the selection set. Insertion order is not
// meaningful; the slice is kept sorted so encodings are stable.
func (f *FormData) AddProgram(programID id.ProgramID) {
	if f.HasProgram(programID) {
		return
	}
	f.SelectedPrograms = append(f.SelectedPrograms, programID)
	slices.Sort(f.SelectedPrograms)
}

// RemoveProgram drops a program from the selection set. Removing an absent
// program is a no-op.
func (f *FormData) RemoveProgram(programID id.ProgramID) {
	f.SelectedPrograms = slices.DeleteFunc(f.SelectedPrograms, func(p id.ProgramID) bool {
		return p == programID
	})
}
