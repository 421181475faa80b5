package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeLicensePatternsApacheHeader(t *testing.T) {
	found := AnalyzeLicensePatterns("Licensed under the Apache License, Version 2.0")
	assert.Contains(t, found, "Apache License")
	assert.Contains(t, found, "Licensed under")
}

func TestAnalyzeLicensePatternsIsCaseInsensitive(t *testing.T) {
	found := AnalyzeLicensePatterns("licensed under the MIT LICENSE")
	// Canonical indicator spellings come back, not the matched text.
	assert.Contains(t, found, "MIT License")
	assert.Contains(t, found, "Licensed under")
}

func TestAnalyzeLicensePatternsSubstringFamilies(t *testing.T) {
	// "LGPL" contains "GPL", so a Lesser GPL header matches both.
	found := AnalyzeLicensePatterns("GNU Lesser General Public License (LGPL)")
	assert.Contains(t, found, "GPL")
	assert.Contains(t, found, "LGPL")
	assert.Contains(t, found, "GNU Lesser General Public License")
}

func TestAnalyzeLicensePatternsEmptyText(t *testing.T) {
	found := AnalyzeLicensePatterns("")
	require.NotNil(t, found)
	assert.Empty(t, found)
}

func TestAnalyzeLicensePatternsNoMatch(t *testing.T) {
	found := AnalyzeLicensePatterns("package utilities for string processing")
	assert.Empty(t, found)
}

func TestAnalyzeLicensePatternsPreservesIndicatorOrder(t *testing.T) {
	text := "SPDX-License-Identifier: MIT\nMIT License\nCopyright (c) 2023"
	found := AnalyzeLicensePatterns(text)
	require.Equal(t, []string{"MIT License", "Copyright (c)", "SPDX-License-Identifier"}, found)
}

func TestAnalyzeLicensePatternsUnicodeIndicator(t *testing.T) {
	found := AnalyzeLicensePatterns("© 2023 Example Corp")
	assert.Contains(t, found, "©")
}

func TestLicenseIndicatorsReturnsCopy(t *testing.T) {
	a := LicenseIndicators()
	require.NotEmpty(t, a)
	a[0] = "tampered"
	assert.NotEqual(t, "tampered", LicenseIndicators()[0])
}
