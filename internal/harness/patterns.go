package harness

import "strings"

// licenseIndicators is the fixed list of phrases the pattern scanner looks
// for in fixture package documentation. Matching is case-insensitive and
// purely substring-based; the entries double as SCANOSS detection bait.
var licenseIndicators = []string{
	"MIT License", "Apache License", "GPL", "LGPL", "AGPL",
	"Mozilla Public License", "MPL", "Eclipse Public License", "EPL",
	"Creative Commons", "CC BY", "CC BY-SA", "CC BY-NC",
	"BSD License", "ISC License", "Unlicense", "WTFPL",
	"Proprietary", "Commercial License", "All rights reserved",
	"GNU General Public License", "GNU Lesser General Public License",
	"GNU Affero General Public License", "Subject to the terms",
	"Permission is hereby granted", "This program is free software",
	"Copyright (c)", "©", "Licensed under", "SPDX-License-Identifier",
}

// AnalyzeLicensePatterns returns every license indicator phrase present in
// text, in indicator-list order. The returned values are the canonical
// indicator spellings, not the matched substrings.
func AnalyzeLicensePatterns(text string) []string {
	found := []string{}
	lower := strings.ToLower(text)
	for _, indicator := range licenseIndicators {
		if strings.Contains(lower, strings.ToLower(indicator)) {
			found = append(found, indicator)
		}
	}
	return found
}

// LicenseIndicators returns a copy of the scanner's indicator list.
func LicenseIndicators() []string {
	out := make([]string, len(licenseIndicators))
	copy(out, licenseIndicators)
	return out
}
