package domain

import dErrors "certflow/pkg/domain-errors"

// CertificationLevel is the applicant's rank in the certification scheme.
// Invariant: levels form a total order qualified < advanced-2 < advanced-3,
// and an empty value means "not yet selected", which is legal everywhere
// except the certification-level gate.
type CertificationLevel string

const (
	LevelQualified CertificationLevel = "qualified"
	LevelAdvanced2 CertificationLevel = "advanced-2"
	LevelAdvanced3 CertificationLevel = "advanced-3"
)

// levelRank is the single source of truth for level ordering. Index position
// drives eligibility comparison, so the order here is load-bearing.
var levelRank = map[CertificationLevel]int{
	LevelQualified: 0,
	LevelAdvanced2: 1,
	LevelAdvanced3: 2,
}

// ParseCertificationLevel constructs a level from external input. Empty input
// is rejected here; callers that allow "unselected" should check for empty
// before parsing.
func ParseCertificationLevel(s string) (CertificationLevel, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "certification level cannot be empty")
	}
	l := CertificationLevel(s)
	if !l.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown certification level %q", s)
	}
	return l, nil
}

// IsValid checks if the level is one of the supported enum values.
func (l CertificationLevel) IsValid() bool {
	_, ok := levelRank[l]
	return ok
}

// IsUnset reports whether the applicant has not selected a level yet.
func (l CertificationLevel) IsUnset() bool {
	return l == ""
}

// Rank returns the level's position in the ordering and whether the level is
// a known value. Unset and unknown levels both report ok=false.
func (l CertificationLevel) Rank() (int, bool) {
	r, ok := levelRank[l]
	return r, ok
}

// MinYearsOfExperience is the fixed, level-keyed minimum used by the
// pre-submission gate. It is deliberately separate from the date-derived
// grace minimum in the rules engine; both checks exist in the product.
func (l CertificationLevel) MinYearsOfExperience() int {
	switch l {
	case LevelAdvanced2:
		return 3
	case LevelAdvanced3:
		return 8
	default:
		return 0
	}
}

// String returns the string representation of the level.
func (l CertificationLevel) String() string {
	return string(l)
}
