package eligibility

import (
	"testing"

	"github.com/stretchr/testify/assert"

	id "certflow/pkg/domain"
)

func TestEvaluate_OrderConsistency(t *testing.T) {
	levels := []id.CertificationLevel{id.LevelQualified, id.LevelAdvanced2, id.LevelAdvanced3}

	// Every level is eligible for its own rank and everything below it.
	for i, applicant := range levels {
		for j, required := range levels {
			status := Evaluate(applicant, required)
			if i >= j {
				assert.Equal(t, StatusEligible, status, "%s vs %s", applicant, required)
			} else {
				assert.Equal(t, StatusIneligible, status, "%s vs %s", applicant, required)
			}
		}
	}
}

func TestEvaluate_QualifiedOnlyReachesQualified(t *testing.T) {
	assert.Equal(t, StatusEligible, Evaluate(id.LevelQualified, id.LevelQualified))
	assert.Equal(t, StatusIneligible, Evaluate(id.LevelQualified, id.LevelAdvanced2))
	assert.Equal(t, StatusIneligible, Evaluate(id.LevelQualified, id.LevelAdvanced3))
}

func TestEvaluate_Advanced3ReachesEverything(t *testing.T) {
	for _, required := range []id.CertificationLevel{id.LevelQualified, id.LevelAdvanced2, id.LevelAdvanced3} {
		assert.Equal(t, StatusEligible, Evaluate(id.LevelAdvanced3, required))
	}
}

func TestEvaluate_UnsetApplicantIsPending(t *testing.T) {
	for _, required := range []id.CertificationLevel{id.LevelQualified, id.LevelAdvanced2, id.LevelAdvanced3} {
		assert.Equal(t, StatusPending, Evaluate("", required))
	}
}

func TestEvaluate_UnknownLevelsAreErrors(t *testing.T) {
	assert.Equal(t, StatusError, Evaluate("grandmaster", id.LevelQualified))
	assert.Equal(t, StatusError, Evaluate(id.LevelQualified, "grandmaster"))
	assert.Equal(t, StatusError, Evaluate(id.LevelQualified, ""))
}
