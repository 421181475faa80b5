package harness

// Registry returns the static table of fixture packages under test, in
// stable order. Each entry names a Go package under the fixtures root whose
// package comment carries the license text a scanner is expected to flag.
func Registry() []Fixture {
	return []Fixture{
		{
			Name:             "apache_2_0",
			Path:             "data/apacheutils",
			ExpectedLicenses: []string{"Apache-2.0"},
			LicenseType:      TypePermissive,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "gpl_v2",
			Path:             "scraper/gpl2tools",
			ExpectedLicenses: []string{"GPL-2.0"},
			LicenseType:      TypeCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "agpl_v3",
			Path:             "data/agpldb",
			ExpectedLicenses: []string{"AGPL-3.0"},
			LicenseType:      TypeCopyleft,
			CommercialUse:    CommercialYes,
			NetworkCopyleft:  true,
		},
		{
			Name:             "mpl_2_0",
			Path:             "config/mpl2config",
			ExpectedLicenses: []string{"MPL-2.0"},
			LicenseType:      TypeWeakCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "epl_2_0",
			Path:             "data/epl2analytics",
			ExpectedLicenses: []string{"EPL-2.0"},
			LicenseType:      TypeWeakCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "creative_commons",
			Path:             "data/cccontent",
			ExpectedLicenses: []string{"CC-BY-4.0", "CC-BY-SA-4.0", "CC-BY-NC-4.0"},
			LicenseType:      TypeCreativeCommons,
			CommercialUse:    CommercialDepends,
		},
		{
			Name:             "proprietary",
			Path:             "scraper/proprietarytools",
			ExpectedLicenses: []string{"Proprietary", "Commercial"},
			LicenseType:      TypeProprietary,
			CommercialUse:    CommercialNo,
		},
		{
			Name:             "mixed_licenses",
			Path:             "mixed",
			ExpectedLicenses: []string{"MIT", "BSD-3-Clause", "GPL-3.0", "Proprietary", "Multiple"},
			LicenseType:      TypeMixed,
			CommercialUse:    CommercialComplex,
		},
		{
			Name:             "existing_lgpl",
			Path:             "data/lgplutils",
			ExpectedLicenses: []string{"LGPL-2.1"},
			LicenseType:      TypeCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "existing_gpl3",
			Path:             "scraper/gpl3webclient",
			ExpectedLicenses: []string{"GPL-3.0"},
			LicenseType:      TypeCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "international",
			Path:             "international/globallicenses",
			ExpectedLicenses: []string{"EUPL-1.2", "Proprietary"},
			LicenseType:      TypeInternational,
			CommercialUse:    CommercialDepends,
		},
		{
			Name:             "dual_license",
			Path:             "security/duallicensecrypto",
			ExpectedLicenses: []string{"GPL-3.0", "Commercial"},
			LicenseType:      TypeDual,
			CommercialUse:    CommercialDepends,
		},
		{
			Name:             "pulp_inspired",
			Path:             "testing/pulpinspired",
			ExpectedLicenses: []string{"GPL-3.0"},
			LicenseType:      TypeCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "pulp_patterns",
			Path:             "testing/pulppatterns",
			ExpectedLicenses: []string{"GPL-3.0"},
			LicenseType:      TypeCopyleft,
			CommercialUse:    CommercialYes,
		},
		{
			Name:             "license_violations",
			Path:             "violations/licenseviolations",
			ExpectedLicenses: []string{"GPL-3.0", "Proprietary"},
			LicenseType:      TypeViolation,
			CommercialUse:    CommercialNo,
		},
		{
			Name:             "complex_deps",
			Path:             "advanced/complexdeps",
			ExpectedLicenses: []string{"MIT", "GPL-3.0", "Multiple"},
			LicenseType:      TypeMixed,
			CommercialUse:    CommercialComplex,
		},
	}
}

// RegistryByName returns the registry keyed by fixture name.
func RegistryByName() map[string]Fixture {
	entries := Registry()
	byName := make(map[string]Fixture, len(entries))
	for _, f := range entries {
		byName[f.Name] = f
	}
	return byName
}
