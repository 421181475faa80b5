package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fixturelab/scanfix/internal/ops"
	"github.com/fixturelab/scanfix/pkg/buildinfo"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	if err := ops.RegisterCommand("version", ops.GroupSupport, versionCmd, "Show version information"); err != nil {
		panic(fmt.Sprintf("failed to register version command: %v", err))
	}
	versionCmd.Flags().Bool("extended", false, "Show extended build information")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	extended, _ := cmd.Flags().GetBool("extended")

	cmd.Printf("scanfix %s\n", buildinfo.BinaryVersion)
	if extended {
		if mv := buildinfo.ModuleVersion(); mv != "" {
			cmd.Printf("module version: %s\n", mv)
		}
		cmd.Printf("go: %s\n", runtime.Version())
		cmd.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
