package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

var initCmd = &cobra.Command{
	Use:     "init",
	Aliases: []string{"i"},
	Short:   "Write a starter .drift.yml",
	Long: `Write a starter .drift.yml into the current directory. The generated
scripts cover a typical single-page app: a source mount, an API proxy, and
the implicit defaults drift injects on top (web_modules mount, JS/TS
transpilation).`,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing .drift.yml")
}

// starterConfig mirrors the config file shape; kept separate from
// config.Config so init owns its own YAML layout and comments-by-ordering.
type starterConfig struct {
	Mode    string            `yaml:"mode"`
	Scripts map[string]string `yaml:"scripts"`
	Install []string          `yaml:"install"`
	Dev     starterDev        `yaml:"dev"`
}

type starterDev struct {
	Port int    `yaml:"port"`
	Out  string `yaml:"out"`
}

func runInit(cmd *cobra.Command, args []string) error {
	const configPath = ".drift.yml"

	if _, err := os.Stat(configPath); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", configPath)
	}

	starter := starterConfig{
		Mode: "development",
		Scripts: map[string]string{
			"mount:src": "mount src --to /",
			"proxy:api": "proxy http://localhost:9000 --to /api",
		},
		Install: []string{"src/index.js"},
		Dev: starterDev{
			Port: 8080,
			Out:  "build",
		},
	}

	data, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("failed to marshal starter config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	fmt.Printf("Wrote %s\n", configPath)
	return nil
}
