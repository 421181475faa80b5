package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fixturelab/scanfix/internal/ops"
	"github.com/fixturelab/scanfix/pkg/buildinfo"
	"github.com/fixturelab/scanfix/pkg/exitcode"
	"github.com/fixturelab/scanfix/pkg/logger"
)

// newRootCommand creates a fresh root command instance.
// The factory pattern lets tests build isolated command trees without shared state.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scanfix",
		Short: "License-scanner fixture harness",
		Long: `Scanfix maintains a synthetic corpus of license-bearing fixture packages
and exercises license scanners (SCANOSS or equivalent) against it in CI.

Examples:
   scanfix scan       # Run fixture detection tests and write artifacts
   scanfix registry   # List the fixture registry
   scanfix verify     # Check every fixture file carries a license header
   scanfix policy     # Evaluate license policy against scan results`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initializeLogger(cmd)
		},
	}

	cmd.PersistentFlags().String("log-level", "info", "Set log level (debug|info|warn|error)")
	cmd.PersistentFlags().Bool("json", false, "Output logs in JSON format")
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	cmd.Version = buildinfo.BinaryVersion
	cmd.SetVersionTemplate("scanfix {{.Version}}\n")

	// Grouped help: scan operations first, support commands after
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		reg := ops.GetRegistry()
		cmd.Println(cmd.Long)
		cmd.Println()
		cmd.Println("Scan Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupScan) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Support Commands:")
		for _, c := range reg.GetCommandsByGroup(ops.GroupSupport) {
			cmd.Printf("  %-12s %s\n", c.Name, c.Description)
		}
		cmd.Println()
		cmd.Println("Flags:")
		cmd.Print(cmd.UsageString())
	})

	return cmd
}

// registerSubcommands adds all subcommands to the root command.
func registerSubcommands(cmd *cobra.Command) {
	cmd.AddCommand(scanCmd)
	cmd.AddCommand(registryCmd)
	cmd.AddCommand(verifyCmd)
	cmd.AddCommand(policyCmd)
	cmd.AddCommand(depsCmd)
	cmd.AddCommand(versionCmd)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// Execute runs the root command. Called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command execution failed", logger.Err(err))
		os.Exit(exitcode.GeneralError)
	}
}

func init() {
	registerSubcommands(rootCmd)
}

// initializeLogger sets up the logger based on command flags. Color is
// suppressed when stderr is not a terminal regardless of --no-color.
func initializeLogger(cmd *cobra.Command) {
	logLevelStr, _ := cmd.Flags().GetString("log-level")
	jsonLogs, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	useColor := !noColor && term.IsTerminal(int(os.Stderr.Fd()))

	logger.Initialize(logger.Config{
		Level:    logger.ParseLevel(logLevelStr),
		UseColor: useColor,
		JSON:     jsonLogs,
	})
}
