package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fixturelab/scanfix/internal/harness"
	"github.com/fixturelab/scanfix/internal/ops"
)

var registryCmd = &cobra.Command{
	Use:   "registry",
	Short: "List the fixture registry",
	Long:  `Registry prints the static table of fixture packages and the licenses each is expected to carry.`,
	Args:  cobra.NoArgs,
	RunE:  runRegistry,
}

func init() {
	if err := ops.RegisterCommand("registry", ops.GroupSupport, registryCmd, "List the fixture registry"); err != nil {
		panic(fmt.Sprintf("failed to register registry command: %v", err))
	}
	registryCmd.Flags().String("format", "table", "Output format (table, json, yaml)")
}

func runRegistry(cmd *cobra.Command, _ []string) error {
	entries := harness.Registry()
	format, _ := cmd.Flags().GetString("format")

	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal registry: %w", err)
		}
		cmd.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("failed to marshal registry: %w", err)
		}
		cmd.Print(string(data))
	case "table":
		printRegistryTable(cmd, entries)
	default:
		return fmt.Errorf("unsupported format: %q", format)
	}
	return nil
}

// printRegistryTable renders the registry as an aligned text table. Widths
// are computed with runewidth so entries with non-ASCII license names (the
// international fixture) stay aligned.
func printRegistryTable(cmd *cobra.Command, entries []harness.Fixture) {
	headers := []string{"NAME", "PATH", "EXPECTED LICENSES", "TYPE"}
	rows := make([][]string, 0, len(entries))
	for _, f := range entries {
		rows = append(rows, []string{
			f.Name,
			f.Path,
			strings.Join(f.ExpectedLicenses, ", "),
			string(f.LicenseType),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	printRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = runewidth.FillRight(cell, widths[i])
		}
		cmd.Println(strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	printRow(headers)
	for _, row := range rows {
		printRow(row)
	}
}
