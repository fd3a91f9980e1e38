package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "certflow/pkg/domain-errors"
)

func TestParseCertificationLevel(t *testing.T) {
	t.Run("accepts all supported levels", func(t *testing.T) {
		for _, s := range []string{"qualified", "advanced-2", "advanced-3"} {
			l, err := ParseCertificationLevel(s)
			require.NoError(t, err, s)
			assert.True(t, l.IsValid())
		}
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := ParseCertificationLevel("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects unknown", func(t *testing.T) {
		_, err := ParseCertificationLevel("advanced-4")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})
}

func TestCertificationLevel_Ordering(t *testing.T) {
	q, _ := LevelQualified.Rank()
	a2, _ := LevelAdvanced2.Rank()
	a3, _ := LevelAdvanced3.Rank()

	assert.Less(t, q, a2)
	assert.Less(t, a2, a3)

	_, ok := CertificationLevel("").Rank()
	assert.False(t, ok, "unset level has no rank")
	_, ok = CertificationLevel("master").Rank()
	assert.False(t, ok, "unknown level has no rank")
}

func TestCertificationLevel_MinYearsOfExperience(t *testing.T) {
	assert.Equal(t, 0, LevelQualified.MinYearsOfExperience())
	assert.Equal(t, 3, LevelAdvanced2.MinYearsOfExperience())
	assert.Equal(t, 8, LevelAdvanced3.MinYearsOfExperience())
	assert.Equal(t, 0, CertificationLevel("").MinYearsOfExperience())
}
