package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "certflow/pkg/domain"
	"certflow/internal/wizard/models"
)

// Fixed evaluation time so window boundaries are deterministic.
var evalTime = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

func isoDaysAgo(days int) string {
	return evalTime.AddDate(0, 0, -days).Format("2006-01-02")
}

func TestMinExperience(t *testing.T) {
	tests := []struct {
		name     string
		timeline string
		want     int
	}{
		{"empty timeline has no requirement", "", 0},
		{"unparseable timeline has no requirement", "soon", 0},
		{"completed today requires full baseline", isoDaysAgo(0), 3},
		{"one year of grace", isoDaysAgo(365), 2},
		{"two years of grace", isoDaysAgo(2 * 365), 1},
		{"three years of grace floors the requirement", isoDaysAgo(3 * 365), 0},
		{"beyond three years stays floored", isoDaysAgo(10 * 365), 0},
		{"future completion date requires full baseline", isoDaysAgo(-400), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MinExperience(evalTime, tc.timeline))
		})
	}
}

func TestMinExperience_MonotonicallyNonIncreasing(t *testing.T) {
	prev := MinExperience(evalTime, isoDaysAgo(0))
	require.Equal(t, 3, prev)
	for days := 30; days <= 6*365; days += 30 {
		cur := MinExperience(evalTime, isoDaysAgo(days))
		require.LessOrEqual(t, cur, prev, "requirement grew at %d days", days)
		require.GreaterOrEqual(t, cur, 0)
		prev = cur
	}
	assert.Equal(t, 0, prev)
}

func TestValidateForm_TSCBoundary(t *testing.T) {
	form := validForm()

	form.TSCsCovered = 74
	state := ValidateForm(evalTime, form)
	assert.False(t, state.TSCs.Valid)
	assert.NotEmpty(t, state.TSCs.Message)

	form.TSCsCovered = 75
	state = ValidateForm(evalTime, form)
	assert.True(t, state.TSCs.Valid)
	assert.Empty(t, state.TSCs.Message)
}

func TestValidateForm_TimelineWindow(t *testing.T) {
	tests := []struct {
		name     string
		timeline string
		valid    bool
	}{
		{"five years minus a day in the past", evalTime.AddDate(-5, 0, 1).Format("2006-01-02"), true},
		{"exactly five years in the past", evalTime.AddDate(-5, 0, 0).Format("2006-01-02"), true},
		{"five years and a day in the past", evalTime.AddDate(-5, 0, -1).Format("2006-01-02"), false},
		{"exactly three years ahead", evalTime.AddDate(3, 0, 0).Format("2006-01-02"), true},
		{"three years and a day ahead", evalTime.AddDate(3, 0, 1).Format("2006-01-02"), false},
		{"not a date", "next spring", false},
		{"empty", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			form.Timeline = tc.timeline
			state := ValidateForm(evalTime, form)
			assert.Equal(t, tc.valid, state.Timeline.Valid)
		})
	}
}

func TestValidateForm_Experience(t *testing.T) {
	form := validForm()
	form.Timeline = isoDaysAgo(0) // full 3-year requirement applies

	form.Amount = "2"
	state := ValidateForm(evalTime, form)
	assert.False(t, state.Experience.Valid)

	form.Amount = "3"
	state = ValidateForm(evalTime, form)
	assert.True(t, state.Experience.Valid)

	// After enough grace the same answer clears the bar.
	form.Amount = "0"
	form.Timeline = isoDaysAgo(4 * 365)
	state = ValidateForm(evalTime, form)
	assert.True(t, state.Experience.Valid)

	form.Amount = "plenty"
	state = ValidateForm(evalTime, form)
	assert.False(t, state.Experience.Valid)
}

func TestValidateForm_Industry(t *testing.T) {
	form := validForm()
	form.Industry = ""
	state := ValidateForm(evalTime, form)
	assert.False(t, state.Industry.Valid)

	form.Industry = id.IndustryInsurance
	state = ValidateForm(evalTime, form)
	assert.True(t, state.Industry.Valid)
}

func TestValidateForm_FailuresAreIndependent(t *testing.T) {
	form := validForm()
	form.TSCsCovered = 10
	form.Industry = ""

	state := ValidateForm(evalTime, form)
	assert.False(t, state.TSCs.Valid)
	assert.False(t, state.Industry.Valid)
	assert.True(t, state.Timeline.Valid, "unrelated fields still evaluate")
	assert.True(t, state.Experience.Valid)
}

// validForm passes every inline rule at evalTime.
func validForm() models.FormData {
	form := models.NewFormData()
	form.FirstName = "Mei"
	form.LastName = "Tan"
	form.Email = "mei.tan@example.com"
	form.Phone = "+65 8123 4567"
	form.CertificationLevel = id.LevelAdvanced2
	form.Purpose = "Compliance analyst"
	form.Amount = "4"
	form.Timeline = isoDaysAgo(200)
	form.Industry = id.IndustryBanking
	form.TSCsCovered = 80
	return form
}
