package memory

import (
	"certflow/internal/catalog/models"
	id "certflow/pkg/domain"
)

// Built-in catalog for development and tests. Production deployments load
// the catalog from Postgres instead.
var seedPrograms = []models.Program{
	{
		ID:            "ibf-ftp-core",
		ProviderName:  "Institute of Banking and Finance",
		ProgramName:   "Financial Technology Practitioner Core",
		URL:           "https://example.org/programs/ftp-core",
		RequiredLevel: id.LevelQualified,
	},
	{
		ID:            "ibf-ftp-advanced",
		ProviderName:  "Institute of Banking and Finance",
		ProgramName:   "Financial Technology Practitioner Advanced",
		URL:           "https://example.org/programs/ftp-advanced",
		RequiredLevel: id.LevelAdvanced2,
	},
	{
		ID:            "gfa-risk-lead",
		ProviderName:  "Global Finance Academy",
		ProgramName:   "Risk Management Leadership",
		URL:           "https://example.org/programs/risk-lead",
		RequiredLevel: id.LevelAdvanced3,
	},
	{
		ID:            "gfa-compliance",
		ProviderName:  "Global Finance Academy",
		ProgramName:   "Regulatory Compliance Specialist",
		URL:           "https://example.org/programs/compliance",
		RequiredLevel: id.LevelAdvanced2,
	},
	{
		ID:            "apex-markets",
		ProviderName:  "Apex Markets Institute",
		ProgramName:   "Capital Markets Foundations",
		URL:           "https://example.org/programs/markets",
		RequiredLevel: id.LevelQualified,
	},
}

var seedRoles = []models.Role{
	{ID: "role-compliance-analyst", Name: "Compliance Analyst"},
	{ID: "role-relationship-manager", Name: "Relationship Manager"},
	{ID: "role-risk-officer", Name: "Risk Officer"},
	{ID: "role-fund-accountant", Name: "Fund Accountant"},
	{ID: "role-underwriter", Name: "Underwriter"},
}

var seedCourses = []models.Course{
	{ID: "course-regulatory-foundations", Name: "Regulatory Foundations"},
	{ID: "course-financial-markets", Name: "Financial Markets and Instruments"},
	{ID: "course-risk-governance", Name: "Risk Governance"},
	{ID: "course-insurance-practice", Name: "Insurance Practice"},
}
