package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fixturelab/scanfix/internal/deps"
	"github.com/fixturelab/scanfix/internal/ops"
)

var depsCmd = &cobra.Command{
	Use:   "deps [target]",
	Short: "Classify the licenses of the harness's own Go dependencies",
	Long: `Deps classifies the license of every Go module dependency reachable from
the target module. The fixture corpus is intentionally dirty; the harness
code itself must not be. A copyleft dependency here fails the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDeps,
}

func init() {
	if err := ops.RegisterCommand("deps", ops.GroupScan, depsCmd, "Classify the licenses of the harness's own Go dependencies"); err != nil {
		panic(fmt.Sprintf("failed to register deps command: %v", err))
	}
	depsCmd.Flags().String("format", "pretty", "Output format (pretty, json)")
	depsCmd.Flags().Bool("alert-only", false, "Report copyleft dependencies without failing")
}

func runDeps(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	result, err := deps.Analyze(cmd.Context(), target)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "json":
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		cmd.Println(string(data))
	case "pretty":
		cmd.Printf("Dependencies analyzed: %d\n", len(result.Dependencies))
		for _, dep := range result.Dependencies {
			cmd.Printf("  %-50s %s\n", dep.Module, dep.LicenseType)
		}
		if len(result.Copyleft) > 0 {
			cmd.Printf("Copyleft dependencies: %d\n", len(result.Copyleft))
		}
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}

	alertOnly, _ := cmd.Flags().GetBool("alert-only")
	if !result.Passed && !alertOnly {
		return fmt.Errorf("copyleft licenses found in %d dependencies", len(result.Copyleft))
	}
	return nil
}
