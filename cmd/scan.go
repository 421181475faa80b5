package cmd

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/fixturelab/scanfix/internal/harness"
	"github.com/fixturelab/scanfix/internal/ops"
	"github.com/fixturelab/scanfix/pkg/config"
	"github.com/fixturelab/scanfix/pkg/logger"
)

var scanCmd = &cobra.Command{
	Use:   "scan [target]",
	Short: "Run license detection tests and write artifacts",
	Long: `Scan runs the full fixture detection pipeline: every registry entry is
loaded, its package documentation is scanned for license indicators, and the
results are written to license_test_results.json plus a Markdown report.

The command exits 0 even when fixtures fail to load; load failures are data,
not errors, because broken fixtures are part of what the corpus tests.
Use --strict to turn load failures into a non-zero exit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	if err := ops.RegisterCommand("scan", ops.GroupScan, scanCmd, "Run license detection tests and write artifacts"); err != nil {
		panic(fmt.Sprintf("failed to register scan command: %v", err))
	}
	scanCmd.Flags().String("format", "pretty", "Summary output format (pretty, json)")
	scanCmd.Flags().Bool("strict", false, "Exit non-zero when any fixture fails to load")
	scanCmd.Flags().Bool("no-artifacts", false, "Skip writing the JSON and Markdown artifacts")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	cfg, err := config.Load(target)
	if err != nil {
		return err
	}

	fixturesRoot := filepath.Join(target, cfg.Fixtures.Root)
	logger.Info("running license detection tests", logger.String("fixtures", fixturesRoot))

	runner := harness.NewRunner(fixturesRoot)
	results := runner.Run()

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		data, err := harness.MarshalResults(results)
		if err != nil {
			return err
		}
		cmd.Print(string(data))
	case "pretty":
		printScanSummary(cmd, results)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}

	noArtifacts, _ := cmd.Flags().GetBool("no-artifacts")
	if !noArtifacts {
		outputDir := filepath.Join(target, cfg.Output.Dir)
		artifacts, err := harness.WriteArtifacts(results, outputDir, cfg.Output.ResultsFile, cfg.Output.ReportFile)
		if err != nil {
			return err
		}
		logger.Info("artifacts written",
			logger.String("results", artifacts.ResultsPath),
			logger.String("report", artifacts.ReportPath))
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && results.ModulesLoaded < results.ModulesTested {
		return fmt.Errorf("%d of %d fixtures failed to load",
			results.ModulesTested-results.ModulesLoaded, results.ModulesTested)
	}
	return nil
}

func printScanSummary(cmd *cobra.Command, results *harness.Results) {
	cmd.Printf("Fixture modules tested: %d\n", results.ModulesTested)
	cmd.Printf("Fixture modules loaded: %d\n", results.ModulesLoaded)
	cmd.Printf("Unique licenses found:  %d\n", results.Summary.TotalUniqueLicenses)
	cmd.Printf("Load success rate:      %.1f%%\n", results.Summary.ModuleLoadSuccessRate)
	cmd.Println()
	cmd.Println("License categories:")

	categories := make([]string, 0, len(results.Summary.LicenseCategories))
	for category := range results.Summary.LicenseCategories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		cov := results.Summary.LicenseCategories[category]
		cmd.Printf("  %-18s %d/%d (%.1f%%)\n", category, cov.Found, cov.Total, cov.Percentage)
	}
}
