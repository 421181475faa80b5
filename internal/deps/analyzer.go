// Package deps classifies the licenses of the harness's own Go module
// dependencies. The fixture corpus fakes license conflicts; this package
// reports the real ones, so CI can keep the harness itself clean while the
// fixtures stay intentionally dirty.
package deps

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/go-licenses/v2/licenses"
)

// DependencyLicense is the classification result for one module dependency.
type DependencyLicense struct {
	Module      string `json:"module"`
	Version     string `json:"version,omitempty"`
	LicenseFile string `json:"license_file,omitempty"`
	LicenseType string `json:"license_type"`
	URL         string `json:"url,omitempty"`
}

// Result holds the full dependency license report.
type Result struct {
	Dependencies []DependencyLicense `json:"dependencies"`
	Copyleft     []string            `json:"copyleft_modules"`
	Passed       bool                `json:"passed"`
}

// Analyze classifies the licenses of every library reachable from the
// module rooted at target. Requires a go.mod at target.
func Analyze(ctx context.Context, target string) (*Result, error) {
	if _, err := os.Stat(filepath.Join(target, "go.mod")); err != nil {
		return nil, errors.New("no go.mod found in target directory")
	}

	classifier, err := licenses.NewClassifier()
	if err != nil {
		return nil, fmt.Errorf("failed to create license classifier: %w", err)
	}

	libraries, err := licenses.Libraries(ctx, classifier, false, nil, target)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate libraries: %w", err)
	}

	result := &Result{Passed: true}
	for _, lib := range libraries {
		licenseType := "Unknown"
		if data, err := os.ReadFile(lib.LicenseFile); err == nil {
			licenseType = DetectLicenseType(string(data))
		}
		if licenseType == "Unknown" {
			licenseType = DetectLicenseType(filepath.Base(lib.LicenseFile))
		}

		dep := DependencyLicense{
			Module:      lib.Name(),
			Version:     lib.Version(),
			LicenseFile: lib.LicenseFile,
			LicenseType: licenseType,
			URL:         LicenseURL(licenseType),
		}
		result.Dependencies = append(result.Dependencies, dep)

		if IsCopyleft(licenseType) {
			result.Copyleft = append(result.Copyleft, dep.Module)
			result.Passed = false
		}
	}

	sort.Slice(result.Dependencies, func(i, j int) bool {
		return result.Dependencies[i].Module < result.Dependencies[j].Module
	})
	sort.Strings(result.Copyleft)

	return result, nil
}

// IsCopyleft reports whether a license identifier belongs to the GPL family.
func IsCopyleft(licenseType string) bool {
	switch {
	case strings.HasPrefix(licenseType, "GPL-"),
		strings.HasPrefix(licenseType, "AGPL-"),
		strings.HasPrefix(licenseType, "LGPL-"):
		return true
	}
	return false
}
