package harness

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fixturelab/scanfix/pkg/safeio"
)

// Artifacts names the files a scan run writes into the output directory.
type Artifacts struct {
	ResultsPath string
	ReportPath  string
}

// WriteArtifacts serializes the results to JSON (validated against the
// embedded schema first) and renders the Markdown report, overwriting any
// previous artifacts at the same paths. Serialization and rendering both
// happen before the first write so a failure cannot leave a half-updated
// artifact pair behind.
func WriteArtifacts(results *Results, outputDir, resultsFile, reportFile string) (*Artifacts, error) {
	data, err := MarshalResults(results)
	if err != nil {
		return nil, err
	}
	report, err := GenerateReport()
	if err != nil {
		return nil, err
	}

	artifacts := &Artifacts{
		ResultsPath: filepath.Join(outputDir, resultsFile),
		ReportPath:  filepath.Join(outputDir, reportFile),
	}

	if err := safeio.WriteFilePreservePerms(artifacts.ResultsPath, data); err != nil {
		return nil, fmt.Errorf("failed to write results file: %w", err)
	}
	if err := safeio.WriteFilePreservePerms(artifacts.ReportPath, []byte(report)); err != nil {
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}

	return artifacts, nil
}

// MarshalResults serializes results as 2-space indented UTF-8 JSON and
// validates the payload against the embedded schema.
func MarshalResults(results *Results) ([]byte, error) {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal results: %w", err)
	}
	data = append(data, '\n')
	if err := ValidateResultsJSON(data); err != nil {
		return nil, err
	}
	return data, nil
}
