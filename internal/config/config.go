// Package config provides configuration loading and management.
package config

// DefaultPythonVersion is the Python version declared by generated
// projects when neither the --python flag nor user config overrides it.
const DefaultPythonVersion = "3.12"

// Config represents the pybootstrap CLI configuration.
// Loaded from ~/.pybootstrap/config.yaml.
type Config struct {
	// PythonVersion is the default Python version for new projects.
	// Env: PYBOOTSTRAP_PYTHON_VERSION, Default: "3.12"
	PythonVersion string `mapstructure:"pythonVersion" yaml:"pythonVersion,omitempty"`

	// UVPath is the path to the uv binary.
	// Env: PYBOOTSTRAP_UV_PATH, Default: "uv" resolved from PATH
	UVPath string `mapstructure:"uvPath" yaml:"uvPath,omitempty"`

	// SkipChecks disables the post-scaffold verification chain by default.
	// Env: PYBOOTSTRAP_SKIP_CHECKS, Default: false
	SkipChecks bool `mapstructure:"skipChecks" yaml:"skipChecks,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `pybootstrap config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		PythonVersion: DefaultPythonVersion,
		UVPath:        "uv",
	}
}

// WithDefaults fills unset fields with their defaults.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.PythonVersion == "" {
		out.PythonVersion = DefaultPythonVersion
	}
	if out.UVPath == "" {
		out.UVPath = "uv"
	}
	return &out
}
