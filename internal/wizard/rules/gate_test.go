package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	id "certflow/pkg/domain"
	"certflow/internal/wizard/models"
)

func TestCheckPersonalInfo(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.FormData)
		wantField string
	}{
		{"complete info passes", func(f *models.FormData) {}, ""},
		{"missing first name", func(f *models.FormData) { f.FirstName = "" }, "firstName"},
		{"missing last name", func(f *models.FormData) { f.LastName = " " }, "lastName"},
		{"missing email", func(f *models.FormData) { f.Email = "" }, "email"},
		{"email without domain", func(f *models.FormData) { f.Email = "mei.tan@" }, "email"},
		{"email without tld", func(f *models.FormData) { f.Email = "mei.tan@example" }, "email"},
		{"email with spaces", func(f *models.FormData) { f.Email = "mei tan@example.com" }, "email"},
		{"missing phone", func(f *models.FormData) { f.Phone = "" }, "phone"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			d := CheckPersonalInfo(form)
			if tc.wantField == "" {
				assert.True(t, d.OK)
				assert.Empty(t, d.Reason)
			} else {
				assert.False(t, d.OK)
				assert.Equal(t, tc.wantField, d.Field)
				assert.NotEmpty(t, d.Reason)
			}
		})
	}
}

func TestCheckCertificationLevel(t *testing.T) {
	form := validForm()
	assert.True(t, CheckCertificationLevel(form).OK)

	form.CertificationLevel = ""
	d := CheckCertificationLevel(form)
	assert.False(t, d.OK)
	assert.Equal(t, "certificationLevel", d.Field)

	form.CertificationLevel = "wizard"
	assert.False(t, CheckCertificationLevel(form).OK)
}

func TestCheckApplicationDetails_RequiredFields(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.FormData)
		wantField string
	}{
		{"missing purpose", func(f *models.FormData) { f.Purpose = "" }, "purpose"},
		{"missing amount", func(f *models.FormData) { f.Amount = "" }, "amount"},
		{"missing timeline", func(f *models.FormData) { f.Timeline = "" }, "timeline"},
		{"missing industry", func(f *models.FormData) { f.Industry = "" }, "industry"},
		{"non-numeric amount", func(f *models.FormData) { f.Amount = "several" }, "amount"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			d := CheckApplicationDetails(evalTime, form)
			assert.False(t, d.OK)
			assert.Equal(t, tc.wantField, d.Field)
		})
	}
}

func TestCheckApplicationDetails_ShortCircuits(t *testing.T) {
	form := validForm()
	form.Purpose = ""
	form.TSCsCovered = 0

	d := CheckApplicationDetails(evalTime, form)
	assert.False(t, d.OK)
	assert.Equal(t, "purpose", d.Field, "first failing rule decides")
}

func TestCheckApplicationDetails_ExperienceMinimums(t *testing.T) {
	// Two years of experience is short of the advanced-2 minimum.
	form := validForm()
	form.CertificationLevel = id.LevelAdvanced2
	form.Amount = "2"
	form.Timeline = isoDaysAgo(0)

	d := CheckApplicationDetails(evalTime, form)
	assert.False(t, d.OK)
	assert.Equal(t, "amount", d.Field)
	assert.Contains(t, d.Reason, "Experience Requirement")

	form.Amount = "3"
	assert.True(t, CheckApplicationDetails(evalTime, form).OK)

	form.CertificationLevel = id.LevelAdvanced3
	form.Amount = "7"
	d = CheckApplicationDetails(evalTime, form)
	assert.False(t, d.OK)
	assert.Contains(t, d.Reason, "Experience Requirement")

	form.Amount = "8"
	assert.True(t, CheckApplicationDetails(evalTime, form).OK)

	form.CertificationLevel = id.LevelQualified
	form.Amount = "0"
	assert.True(t, CheckApplicationDetails(evalTime, form).OK, "qualified has no fixed minimum")
}

func TestCheckApplicationDetails_StaleCompletionDate(t *testing.T) {
	// A six-year-old completion date fails the window even with full
	// skill coverage.
	form := validForm()
	form.TSCsCovered = 80
	form.Timeline = isoDaysAgo(6 * 365)

	d := CheckApplicationDetails(evalTime, form)
	assert.False(t, d.OK)
	assert.Equal(t, "timeline", d.Field)
	assert.Contains(t, d.Reason, "Application Window")
}

func TestCheckApplicationDetails_TSCThreshold(t *testing.T) {
	form := validForm()
	form.TSCsCovered = 74

	d := CheckApplicationDetails(evalTime, form)
	assert.False(t, d.OK)
	assert.Equal(t, "tscs", d.Field)
	assert.Contains(t, d.Reason, "TSC Coverage")
}
