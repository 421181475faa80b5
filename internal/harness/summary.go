package harness

// licenseCategories is the fixed denominator table used for per-category
// coverage percentages. The identifiers are SPDX tags except for the
// proprietary pseudo-labels.
var licenseCategories = map[string][]string{
	"permissive":       {"MIT", "Apache-2.0", "BSD-3-Clause", "ISC"},
	"copyleft":         {"GPL-2.0", "GPL-3.0", "LGPL-2.1", "AGPL-3.0"},
	"weak_copyleft":    {"MPL-2.0", "EPL-2.0"},
	"creative_commons": {"CC-BY-4.0", "CC-BY-SA-4.0", "CC-BY-NC-4.0"},
	"proprietary":      {"Proprietary", "Commercial"},
}

// detectionTargets enumerates the scanner behaviors this corpus exists to
// provoke. Informational only; carried verbatim into every summary.
var detectionTargets = []string{
	"Copyleft licenses (should trigger policy violations)",
	"Mixed license conflicts",
	"Proprietary license components",
	"Creative Commons variants",
	"License header patterns",
	"SPDX identifiers",
}

// GenerateSummary computes the aggregate view of a run. It is a pure
// function of the already-collected results and has no side effects.
func GenerateSummary(results *Results) Summary {
	found := make(map[string]struct{}, len(results.LicenseTypesFound))
	for _, lic := range results.LicenseTypesFound {
		found[lic] = struct{}{}
	}

	categories := make(map[string]CategoryCoverage, len(licenseCategories))
	for category, licenses := range licenseCategories {
		count := 0
		for _, lic := range licenses {
			if _, ok := found[lic]; ok {
				count++
			}
		}
		cov := CategoryCoverage{Found: count, Total: len(licenses)}
		if cov.Total > 0 {
			cov.Percentage = float64(cov.Found) / float64(cov.Total) * 100
		}
		categories[category] = cov
	}

	rate := 0.0
	if results.TotalModules > 0 {
		rate = float64(results.ModulesLoaded) / float64(results.TotalModules) * 100
	}

	return Summary{
		ModuleLoadSuccessRate: rate,
		TotalUniqueLicenses:   len(found),
		LicenseCategories:     categories,
		TestCoverage: Coverage{
			CopyleftLicenses:    anyFound(found, licenseCategories["copyleft"]),
			PermissiveLicenses:  hasLicense(found, "Apache-2.0"),
			ProprietaryLicenses: hasLicense(found, "Proprietary"),
			CreativeCommons:     anyFound(found, licenseCategories["creative_commons"]),
		},
		DetectionTargets: detectionTargets,
	}
}

func hasLicense(found map[string]struct{}, lic string) bool {
	_, ok := found[lic]
	return ok
}

func anyFound(found map[string]struct{}, licenses []string) bool {
	for _, lic := range licenses {
		if hasLicense(found, lic) {
			return true
		}
	}
	return false
}
