package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fixturelab/scanfix/internal/harness"
	"github.com/fixturelab/scanfix/internal/ops"
	"github.com/fixturelab/scanfix/internal/policy"
	"github.com/fixturelab/scanfix/pkg/config"
	"github.com/fixturelab/scanfix/pkg/logger"
)

var policyCmd = &cobra.Command{
	Use:   "policy [results.json]",
	Short: "Evaluate license policy against scan results",
	Long: `Policy evaluates a YAML license policy against a scan results file.
Without an explicit policy file, the built-in policy applies: copyleft,
proprietary, and violation fixtures are denied. Since those fixtures exist
on purpose, denials here confirm the corpus is doing its job; --fail-on any
turns denials into a non-zero exit for pipelines that want that.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPolicy,
}

func init() {
	if err := ops.RegisterCommand("policy", ops.GroupScan, policyCmd, "Evaluate license policy against scan results"); err != nil {
		panic(fmt.Sprintf("failed to register policy command: %v", err))
	}
	policyCmd.Flags().String("policy", "", "Policy file path (default: built-in policy)")
	policyCmd.Flags().String("fail-on", "none", "Fail on denials (any, none)")
}

func runPolicy(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	resultsPath := filepath.Join(cfg.Output.Dir, cfg.Output.ResultsFile)
	if len(args) > 0 {
		resultsPath = args[0]
	}

	data, err := os.ReadFile(resultsPath)
	if err != nil {
		return fmt.Errorf("failed to read results file (run 'scanfix scan' first): %w", err)
	}
	var results harness.Results
	if err := json.Unmarshal(data, &results); err != nil {
		return fmt.Errorf("failed to parse results file: %w", err)
	}

	engine := policy.NewOPAEngine()
	policyPath, _ := cmd.Flags().GetString("policy")
	if policyPath == "" && cfg.Policy.Path != "" {
		if _, err := os.Stat(cfg.Policy.Path); err == nil {
			policyPath = cfg.Policy.Path
		}
	}
	if policyPath != "" {
		logger.Debug("loading policy file", logger.String("path", policyPath))
		if err := engine.LoadPolicy(policyPath); err != nil {
			return err
		}
	} else {
		if err := engine.LoadPolicyBytes([]byte(policy.DefaultPolicy)); err != nil {
			return err
		}
	}

	denials, err := engine.Evaluate(cmd.Context(), policy.BuildInput(&results))
	if err != nil {
		return fmt.Errorf("policy evaluation failed: %w", err)
	}

	if len(denials) == 0 {
		cmd.Println("No policy denials")
		return nil
	}
	cmd.Printf("%d policy denials:\n", len(denials))
	for _, d := range denials {
		cmd.Printf("  %s\n", d)
	}

	failOn, _ := cmd.Flags().GetString("fail-on")
	if failOn == "any" {
		return fmt.Errorf("policy denied %d fixtures", len(denials))
	}
	return nil
}
