package harness

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// FileCheck records the header scan of a single fixture source file.
type FileCheck struct {
	Path       string   `json:"path"`
	Indicators []string `json:"indicators"`
	HasLicense bool     `json:"has_license"`
}

// VerifyResult summarizes a corpus verification pass.
type VerifyResult struct {
	FilesChecked int         `json:"files_checked"`
	BareFiles    []string    `json:"bare_files"`
	Checks       []FileCheck `json:"checks"`
}

// VerifyCorpus scans every Go source file under the fixtures root and
// reports files that carry no license indicator at all. Unlike the
// detection pipeline this pass covers unregistered files too, and scans
// whole file contents rather than package documentation: a fixture whose
// license text slipped out of the doc comment should still be caught here.
func VerifyCorpus(ctx context.Context, fixturesRoot string) (*VerifyResult, error) {
	pattern := filepath.ToSlash(filepath.Join(fixturesRoot, "**", "*.go"))
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	checks := make([]FileCheck, len(matches))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, match := range matches {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(match)
			if err != nil {
				return err
			}
			check := FileCheck{
				Path:       filepath.ToSlash(match),
				Indicators: AnalyzeLicensePatterns(string(data)),
			}
			check.HasLicense = len(check.Indicators) > 0
			checks[i] = check
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &VerifyResult{
		FilesChecked: len(checks),
		Checks:       checks,
		BareFiles:    []string{},
	}
	for _, check := range checks {
		if !check.HasLicense && !strings.HasSuffix(check.Path, "_test.go") {
			result.BareFiles = append(result.BareFiles, check.Path)
		}
	}
	return result, nil
}
