// Package config provides configuration management for drift using Viper for
// flexible loading from files, environment variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the DRIFT_ prefix. It carries the raw script map, the
// install entrypoint list, the compilation mode, and dev-server options; the
// script semantics themselves are validated by the compiler, not here.
package config

import (
	"github.com/driftdev/drift/internal/compiler"
	"github.com/driftdev/drift/internal/plugins"
	"github.com/spf13/viper"
)

type Config struct {
	// Scripts maps raw "<type>:<matchList>" keys to command strings.
	Scripts map[string]string `yaml:"scripts"`

	// Install lists the entrypoints handed to the dependency installer and
	// seeded into the plan's known entrypoints.
	Install []string `yaml:"install"`

	// Mode is "development" or "production".
	Mode string `yaml:"mode"`

	Dev DevConfig `yaml:"dev"`
	Log LogConfig `yaml:"log"`
}

type DevConfig struct {
	Port   int    `yaml:"port"`
	Out    string `yaml:"out"`
	Bundle bool   `yaml:"bundle"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Handle scripts set via viper (workaround for viper map handling)
	if viper.IsSet("scripts") && len(config.Scripts) == 0 {
		config.Scripts = viper.GetStringMapString("scripts")
	}
	if viper.IsSet("install") && len(config.Install) == 0 {
		config.Install = viper.GetStringSlice("install")
	}
	if viper.IsSet("dev.bundle") {
		config.Dev.Bundle = viper.GetBool("dev.bundle")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Scripts == nil {
		config.Scripts = map[string]string{}
	}
	if config.Mode == "" {
		config.Mode = string(compiler.ModeDevelopment)
	}
	if config.Dev.Port == 0 {
		config.Dev.Port = 8080
	}
	if config.Dev.Out == "" {
		config.Dev.Out = "build"
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// CompilerInput assembles the compiler contract from the loaded configuration
// and the host's plugin registry.
func (c *Config) CompilerInput(registry *plugins.Registry) compiler.Input {
	scripts := make(map[string]string, len(c.Scripts))
	for k, v := range c.Scripts {
		scripts[k] = v
	}

	entrypoints := make([]string, len(c.Install))
	copy(entrypoints, c.Install)

	return compiler.Input{
		Scripts:          scripts,
		Plugins:          registry.List(),
		Mode:             compiler.Mode(c.Mode),
		Bundle:           c.Dev.Bundle,
		KnownEntrypoints: entrypoints,
	}
}
