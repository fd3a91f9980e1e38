package rules

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"certflow/internal/wizard/models"
)

// Decision is the outcome of a step-transition gate. A failing decision
// names the field that blocked progress and carries the notification text
// to surface. Gates decide; they never notify or log themselves.
type Decision struct {
	OK     bool
	Field  string
	Reason string
}

func pass() Decision { return Decision{OK: true} }

func fail(field, reason string) Decision {
	return Decision{Field: field, Reason: reason}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckPersonalInfo gates the personal-info step. Unlike ValidateForm it
// short-circuits: the first failing rule decides the outcome.
func CheckPersonalInfo(form models.FormData) Decision {
	if strings.TrimSpace(form.FirstName) == "" {
		return fail("firstName", "Please enter your first name.")
	}
	if strings.TrimSpace(form.LastName) == "" {
		return fail("lastName", "Please enter your last name.")
	}
	if strings.TrimSpace(form.Email) == "" {
		return fail("email", "Please enter your email address.")
	}
	if !emailPattern.MatchString(form.Email) {
		return fail("email", "Please enter a valid email address.")
	}
	if strings.TrimSpace(form.Phone) == "" {
		return fail("phone", "Please enter your phone number.")
	}
	return pass()
}

// CheckCertificationLevel gates the certification-level step.
func CheckCertificationLevel(form models.FormData) Decision {
	if form.CertificationLevel.IsUnset() || !form.CertificationLevel.IsValid() {
		return fail("certificationLevel", "Please select a certification level before continuing.")
	}
	return pass()
}

// CheckApplicationDetails gates the application-details step. It enforces
// required fields, the 75% skill-coverage threshold, the five-year window
// on the completion date and the level-specific experience minimums.
func CheckApplicationDetails(now time.Time, form models.FormData) Decision {
	if strings.TrimSpace(form.Purpose) == "" {
		return fail("purpose", "Please enter your current job role.")
	}
	if strings.TrimSpace(form.Amount) == "" {
		return fail("amount", "Please enter your years of experience.")
	}
	if strings.TrimSpace(form.Timeline) == "" {
		return fail("timeline", "Please enter your course completion date.")
	}
	if form.Industry.IsUnset() {
		return fail("industry", "Please select your industry.")
	}
	if form.TSCsCovered < MinTSCCoverage {
		return fail("tscs", "TSC Coverage: your application must cover at least 75% of the required technical skill competencies.")
	}

	completed, err := time.Parse(dateLayout, strings.TrimSpace(form.Timeline))
	if err != nil {
		return fail("timeline", "Application Window: the course completion date must be a valid date (YYYY-MM-DD).")
	}
	if completed.Before(now.AddDate(-5, 0, 0)) {
		return fail("timeline", "Application Window: the course completion date must be within the last 5 years.")
	}

	years, ok := parseYears(form.Amount)
	if !ok {
		return fail("amount", "Please enter your years of experience as a number.")
	}
	if minYears := form.CertificationLevel.MinYearsOfExperience(); years < minYears {
		return fail("amount", fmt.Sprintf(
			"Experience Requirement: %s certification requires at least %d years of experience.",
			form.CertificationLevel, minYears))
	}
	return pass()
}
