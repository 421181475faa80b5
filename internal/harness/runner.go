package harness

import (
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fixturelab/scanfix/pkg/logger"
	"github.com/fixturelab/scanfix/pkg/safeio"
)

// Runner executes the detection pipeline against a fixture corpus on disk.
type Runner struct {
	// FixturesRoot is the directory holding the fixture packages,
	// typically "fixtures" under the repository root.
	FixturesRoot string
}

// NewRunner returns a Runner for the given fixtures root.
func NewRunner(fixturesRoot string) *Runner {
	return &Runner{FixturesRoot: fixturesRoot}
}

// Run walks the registry sequentially, loading each fixture package and
// scanning its documentation for license indicators. Per-fixture failures
// are recorded in the entry's errors list and never abort the run.
func (r *Runner) Run() *Results {
	registry := Registry()

	results := &Results{
		TotalModules: len(registry),
		TestDetails:  make(map[string]*ModuleResult, len(registry)),
	}
	foundSet := make(map[string]struct{})

	for _, fixture := range registry {
		logger.Debug("testing fixture", logger.String("name", fixture.Name))

		detail := &ModuleResult{
			ModulePath:           filepath.ToSlash(filepath.Join(r.FixturesRoot, fixture.Path)),
			ExpectedLicenses:     fixture.ExpectedLicenses,
			LicenseType:          fixture.LicenseType,
			LicensePatternsFound: []string{},
			Errors:               []string{},
		}

		doc, err := r.loadFixtureDoc(fixture.Path)
		switch {
		case err == nil:
			detail.LoadSuccessful = true
			results.ModulesLoaded++
			detail.LicensePatternsFound = AnalyzeLicensePatterns(doc)
			for _, lic := range fixture.ExpectedLicenses {
				foundSet[lic] = struct{}{}
			}
		case errors.Is(err, os.ErrNotExist):
			detail.Errors = append(detail.Errors, fmt.Sprintf("import error: %v", err))
		default:
			detail.Errors = append(detail.Errors, fmt.Sprintf("general error: %v", err))
		}

		results.TestDetails[fixture.Name] = detail
		results.ModulesTested++
	}

	results.LicenseTypesFound = make([]string, 0, len(foundSet))
	for lic := range foundSet {
		results.LicenseTypesFound = append(results.LicenseTypesFound, lic)
	}
	sort.Strings(results.LicenseTypesFound)

	results.Summary = GenerateSummary(results)
	return results
}

// loadFixtureDoc locates the fixture package directory, parses its Go
// sources, and returns the concatenated package documentation. This is the
// closest Go analogue to importing a module and reading its docstring.
func (r *Runner) loadFixtureDoc(relPath string) (string, error) {
	dir := filepath.Join(r.FixturesRoot, relPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("fixture package %s: %w", relPath, err)
	}

	fset := token.NewFileSet()
	var docs []string
	var sawSource bool
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		sawSource = true

		src, err := safeio.ReadFileContained(r.FixturesRoot, filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("fixture source %s: %v", name, err)
		}
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return "", fmt.Errorf("fixture source %s: %v", name, err)
		}
		if file.Doc != nil {
			docs = append(docs, file.Doc.Text())
		}
	}

	if !sawSource {
		return "", fmt.Errorf("fixture package %s: %w", relPath, os.ErrNotExist)
	}
	if len(docs) == 0 {
		return "", fmt.Errorf("fixture package %s has no package documentation", relPath)
	}
	return strings.Join(docs, "\n"), nil
}
