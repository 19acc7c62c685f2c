package main

import (
	"github.com/spf13/cobra"

	"github.com/pybootstrap/cli/internal/cmd"
	cmdconfig "github.com/pybootstrap/cli/internal/cmd/config"
	"github.com/pybootstrap/cli/internal/output"
	"github.com/pybootstrap/cli/internal/version"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
)

// newRootCmd creates the base command for the pybootstrap CLI.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pybootstrap",
		Short: "Scaffold new Python projects",
		Long: `pybootstrap scaffolds a new Python project with uv, ruff, pyright,
pytest, pre-commit, and GitHub Actions CI.

It renders the project skeleton (pyproject.toml, src layout, tests,
pre-commit config, CI workflow), then shells out to uv to create a
virtualenv, install dependencies, and run the verification checks.`,
		PersistentPreRunE: initializeGlobals,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to config file (env: PYBOOTSTRAP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "increase output verbosity")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(cmd.NewNewCmd())
	rootCmd.AddCommand(cmd.NewCheckCmd())
	rootCmd.AddCommand(cmdconfig.NewConfigCmd())

	return rootCmd
}

// initializeGlobals sets up logging based on global flags.
func initializeGlobals(_ *cobra.Command, _ []string) error {
	output.SetupLogging(flagVerbose)

	info := version.GetInfo()
	output.Debug("pybootstrap started", "version", info.Version)

	return nil
}
