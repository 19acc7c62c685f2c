// Package config provides the `pybootstrap config` command group.
package config

import (
	"github.com/spf13/cobra"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration operations",
		Long:  `Commands for creating and inspecting the pybootstrap configuration file.`,
	}

	cmd.AddCommand(
		newInitCmd(),
		newShowCmd(),
	)

	return cmd
}
