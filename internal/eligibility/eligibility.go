// Package eligibility decides whether an applicant's certification level
// admits them to a program.
package eligibility

import (
	id "certflow/pkg/domain"
)

// Status is the outcome of an eligibility check.
type Status string

const (
	// StatusEligible means the applicant's level meets or exceeds the
	// program's required level.
	StatusEligible Status = "eligible"
	// StatusIneligible means the applicant's level ranks below the
	// program's required level.
	StatusIneligible Status = "ineligible"
	// StatusPending means the applicant has not chosen a level yet.
	StatusPending Status = "pending"
	// StatusError means one of the levels is not a recognised rank.
	StatusError Status = "error"
)

func (s Status) String() string { return string(s) }

// Evaluate compares the applicant's certification level against a program's
// required level under the ordering qualified < advanced-2 < advanced-3.
// An unset applicant level is pending, not ineligible; an unrecognised
// level on either side is an error.
func Evaluate(applicant, required id.CertificationLevel) Status {
	if applicant.IsUnset() {
		return StatusPending
	}
	applicantRank, ok := applicant.Rank()
	if !ok {
		return StatusError
	}
	requiredRank, ok := required.Rank()
	if !ok {
		return StatusError
	}
	if applicantRank >= requiredRank {
		return StatusEligible
	}
	return StatusIneligible
}
