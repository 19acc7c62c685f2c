package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pybootstrap/cli/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show CLI version information",
		Long: `Display version information for the pybootstrap CLI.

Shows the CLI version, build information, and the detected uv binary.`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	info := version.GetInfo()
	uvInfo := version.DetectUV("")

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(info, uvInfo))
	return nil
}
