package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pybootstrap/cli/internal/config"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the effective pybootstrap configuration.

Merges the configuration file, environment variables, and defaults, and
prints the result as YAML.`,
		RunE: runShow,
	}
}

func runShow(command *cobra.Command, _ []string) error {
	configFile := command.Flag("config").Value.String()

	cfg, err := config.NewLoader().LoadWithDefaults(configFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	fmt.Fprint(command.OutOrStdout(), string(data))
	return nil
}
