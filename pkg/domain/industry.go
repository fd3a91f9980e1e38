package domain

import dErrors "certflow/pkg/domain-errors"

// Industry is the applicant's sector. Empty means "not yet selected".
type Industry string

const (
	IndustryBanking         Industry = "banking"
	IndustryCapitalMarkets  Industry = "capital-markets"
	IndustryInsurance       Industry = "insurance"
	IndustryAssetManagement Industry = "asset-management"
)

var validIndustries = map[Industry]bool{
	IndustryBanking:         true,
	IndustryCapitalMarkets:  true,
	IndustryInsurance:       true,
	IndustryAssetManagement: true,
}

// ParseIndustry constructs an Industry from external input.
func ParseIndustry(s string) (Industry, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "industry cannot be empty")
	}
	i := Industry(s)
	if !i.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown industry %q", s)
	}
	return i, nil
}

// IsValid checks if the industry is one of the supported enum values.
func (i Industry) IsValid() bool {
	return validIndustries[i]
}

// IsUnset reports whether the applicant has not selected an industry yet.
func (i Industry) IsUnset() bool {
	return i == ""
}

// String returns the string representation of the industry.
func (i Industry) String() string {
	return string(i)
}
