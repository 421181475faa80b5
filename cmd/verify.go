package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fixturelab/scanfix/internal/gitctx"
	"github.com/fixturelab/scanfix/internal/harness"
	"github.com/fixturelab/scanfix/internal/ops"
	"github.com/fixturelab/scanfix/pkg/config"
	"github.com/fixturelab/scanfix/pkg/logger"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [target]",
	Short: "Check every fixture file carries a license header",
	Long: `Verify scans all Go source files under the fixtures root, including ones
not present in the registry, and reports files that carry no license
indicator. A bare fixture is a corpus defect: it gives the scanner nothing
to detect.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVerify,
}

func init() {
	if err := ops.RegisterCommand("verify", ops.GroupScan, verifyCmd, "Check every fixture file carries a license header"); err != nil {
		panic(fmt.Sprintf("failed to register verify command: %v", err))
	}
	verifyCmd.Flags().Bool("allow-bare", false, "Exit zero even when bare fixture files are found")
}

func runVerify(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	cfg, err := config.Load(target)
	if err != nil {
		return err
	}
	fixturesRoot := filepath.Join(target, cfg.Fixtures.Root)

	if repo := gitctx.Collect(target); repo != nil {
		logger.Debug("repository context",
			logger.String("sha", repo.GitSHA),
			logger.String("branch", repo.Branch),
			logger.Bool("dirty", repo.Dirty))
	}

	result, err := harness.VerifyCorpus(cmd.Context(), fixturesRoot)
	if err != nil {
		return err
	}

	cmd.Printf("Checked %d fixture source files\n", result.FilesChecked)
	if len(result.BareFiles) == 0 {
		cmd.Println("All fixture files carry at least one license indicator")
		return nil
	}

	cmd.Printf("%d fixture files carry no license indicator:\n", len(result.BareFiles))
	for _, path := range result.BareFiles {
		cmd.Printf("  %s\n", path)
	}

	allowBare, _ := cmd.Flags().GetBool("allow-bare")
	if allowBare {
		return nil
	}
	return fmt.Errorf("%d bare fixture files found", len(result.BareFiles))
}
