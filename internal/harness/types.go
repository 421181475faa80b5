// Package harness implements the license-fixture detection pipeline:
// a static fixture registry, a loader that extracts package documentation
// from fixture sources, a keyword pattern scanner, a summary aggregator,
// and the JSON/Markdown artifact emitters consumed by CI.
package harness

// LicenseType classifies a fixture by the license family it carries.
type LicenseType string

const (
	TypePermissive      LicenseType = "permissive"
	TypeCopyleft        LicenseType = "copyleft"
	TypeWeakCopyleft    LicenseType = "weak_copyleft"
	TypeCreativeCommons LicenseType = "creative_commons"
	TypeProprietary     LicenseType = "proprietary"
	TypeMixed           LicenseType = "mixed"
	TypeInternational   LicenseType = "international"
	TypeDual            LicenseType = "dual"
	TypeViolation       LicenseType = "violation"
)

// CommercialUse records whether a fixture's license permits commercial use.
// The creative-commons and mixed fixtures carry variant-dependent answers,
// so this is a label rather than a bool.
type CommercialUse string

const (
	CommercialYes     CommercialUse = "yes"
	CommercialNo      CommercialUse = "no"
	CommercialDepends CommercialUse = "depends_on_variant"
	CommercialComplex CommercialUse = "complex"
)

// Fixture describes one entry in the fixture registry.
type Fixture struct {
	Name             string        `json:"name"`
	Path             string        `json:"path"` // package dir relative to the fixtures root
	ExpectedLicenses []string      `json:"expected_licenses"`
	LicenseType      LicenseType   `json:"license_type"`
	CommercialUse    CommercialUse `json:"commercial_use"`
	NetworkCopyleft  bool          `json:"network_copyleft,omitempty"`
}

// ModuleResult holds the per-fixture outcome of a detection run.
type ModuleResult struct {
	ModulePath           string      `json:"module_path"`
	ExpectedLicenses     []string    `json:"expected_licenses"`
	LicenseType          LicenseType `json:"license_type"`
	LoadSuccessful       bool        `json:"load_successful"`
	LicensePatternsFound []string    `json:"license_patterns_found"`
	Errors               []string    `json:"errors"`
}

// Results accumulates a full detection run. license_types_found is kept
// sorted so repeated runs serialize byte-for-byte identically.
type Results struct {
	TotalModules      int                      `json:"total_modules"`
	ModulesTested     int                      `json:"modules_tested"`
	ModulesLoaded     int                      `json:"modules_loaded"`
	LicenseTypesFound []string                 `json:"license_types_found"`
	TestDetails       map[string]*ModuleResult `json:"test_details"`
	Summary           Summary                  `json:"summary"`
}

// CategoryCoverage reports how many of a category's license identifiers
// were covered by the run, against a fixed denominator.
type CategoryCoverage struct {
	Found      int     `json:"found"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// Coverage flags which broad license families the run touched.
type Coverage struct {
	CopyleftLicenses    bool `json:"copyleft_licenses"`
	PermissiveLicenses  bool `json:"permissive_licenses"`
	ProprietaryLicenses bool `json:"proprietary_licenses"`
	CreativeCommons     bool `json:"creative_commons"`
}

// Summary is the aggregate view of a detection run.
type Summary struct {
	ModuleLoadSuccessRate float64                     `json:"module_load_success_rate"`
	TotalUniqueLicenses   int                         `json:"total_unique_licenses"`
	LicenseCategories     map[string]CategoryCoverage `json:"license_categories"`
	TestCoverage          Coverage                    `json:"test_coverage"`
	DetectionTargets      []string                    `json:"scanoss_detection_targets"`
}
