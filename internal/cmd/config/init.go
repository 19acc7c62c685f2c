package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pybootstrap/cli/internal/config"
	oerrors "github.com/pybootstrap/cli/internal/errors"
)

var initForce bool

func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new pybootstrap configuration file",
		Long: `Create a new pybootstrap configuration file with default values.

The configuration file is created at ~/.pybootstrap/config.yaml by default.
Use the --config flag to specify a different location.`,
		RunE: runInit,
	}

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")

	return initCmd
}

func runInit(command *cobra.Command, _ []string) error {
	configFile := command.Flag("config").Value.String()
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(expandedPath)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}

	if exists && !initForce {
		return oerrors.NewExitError(
			fmt.Errorf("config file already exists at %s (use --force to overwrite)", expandedPath),
			oerrors.ExitGeneralError,
		)
	}

	if err := ensureConfigDir(expandedPath); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.DefaultConfig()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	header := []byte("# pybootstrap configuration\n\n")
	data = append(header, data...)

	if err := os.WriteFile(expandedPath, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	fmt.Fprintf(command.OutOrStdout(), "Config file created: %s\n", expandedPath)
	return nil
}

// ensureConfigDir creates the directory the config file lives in, using
// the standard pybootstrap home when the file is at its default location.
func ensureConfigDir(configFile string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return err
	}

	if configFile == paths.ConfigFile {
		return config.EnsureHomeDir()
	}

	return os.MkdirAll(filepath.Dir(configFile), 0o755)
}
