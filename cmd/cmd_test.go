package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/pflag"
)

// executeCommand runs args through a fresh root command tree and captures
// the combined output. Subcommand flag values are reset afterwards so tests
// do not leak flag state into each other.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCommand()
	registerSubcommands(root)

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()

	for _, sub := range root.Commands() {
		sub.Flags().Visit(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}

	return buf.String(), err
}
