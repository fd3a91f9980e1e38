// Package rules implements the wizard's validation logic: the continuous
// per-field checks rendered inline while the form is edited, and the
// blocking gates evaluated when the applicant advances a step.
package rules

import (
	"strconv"
	"strings"
	"time"

	"certflow/internal/wizard/models"
)

const (
	// MinTSCCoverage is the minimum percentage of technical skill
	// competencies an application must evidence.
	MinTSCCoverage = 75

	// dateLayout is the wire format for the course-completion date.
	dateLayout = "2006-01-02"

	// experienceYear is the fixed-length year used by the grace
	// computation. Calendar years are deliberately not used here.
	experienceYear = 365 * 24 * time.Hour
)

// MinExperience returns the minimum years of experience required given the
// course-completion date. Applicants get a grace allowance: each full year
// since completion reduces the baseline three-year requirement by one, down
// to zero. An empty or unparseable date yields no requirement.
func MinExperience(now time.Time, timeline string) int {
	timeline = strings.TrimSpace(timeline)
	if timeline == "" {
		return 0
	}
	completed, err := time.Parse(dateLayout, timeline)
	if err != nil {
		return 0
	}
	elapsed := int(now.Sub(completed) / experienceYear)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > 3 {
		return 0
	}
	return 3 - elapsed
}

// ValidateForm computes the inline validation snapshot for the current form.
// All four fields are evaluated independently; a failure in one never masks
// the others. The result carries user-facing messages and nothing else.
func ValidateForm(now time.Time, form models.FormData) models.ValidationState {
	return models.ValidationState{
		Experience: validateExperience(now, form),
		TSCs:       validateTSCs(form),
		Timeline:   validateTimeline(now, form),
		Industry:   validateIndustry(form),
	}
}

func validateExperience(now time.Time, form models.FormData) models.FieldState {
	required := MinExperience(now, form.Timeline)
	years, ok := parseYears(form.Amount)
	if !ok {
		return models.FieldState{Message: "Enter your years of experience as a number."}
	}
	if years < required {
		return models.FieldState{
			Message: "At least " + strconv.Itoa(required) + " years of experience are required for this completion date.",
		}
	}
	return models.FieldState{Valid: true}
}

func validateTSCs(form models.FormData) models.FieldState {
	if form.TSCsCovered < MinTSCCoverage {
		return models.FieldState{Message: "Your application must cover at least 75% of the required technical skill competencies."}
	}
	return models.FieldState{Valid: true}
}

func validateTimeline(now time.Time, form models.FormData) models.FieldState {
	completed, err := time.Parse(dateLayout, strings.TrimSpace(form.Timeline))
	if err != nil {
		return models.FieldState{Message: "Enter the course completion date as YYYY-MM-DD."}
	}
	earliest := now.AddDate(-5, 0, 0)
	latest := now.AddDate(3, 0, 0)
	if completed.Before(earliest) || completed.After(latest) {
		return models.FieldState{Message: "The course completion date must be within 5 years past to 3 years ahead."}
	}
	return models.FieldState{Valid: true}
}

func validateIndustry(form models.FormData) models.FieldState {
	if form.Industry.IsUnset() || !form.Industry.IsValid() {
		return models.FieldState{Message: "Select the industry you work in."}
	}
	return models.FieldState{Valid: true}
}

// parseYears interprets the free-text experience answer. Blank counts as
// zero; anything non-numeric is rejected.
func parseYears(amount string) (int, bool) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, true
	}
	years, err := strconv.Atoi(amount)
	if err != nil || years < 0 {
		return 0, false
	}
	return years, true
}
