// Package cmd provides the command-line interface for drift with
// configuration management supporting multiple configuration sources.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--config, --mode, ...)
//  2. DRIFT_CONFIG_FILE environment variable (custom config file path)
//  3. Individual environment variables (DRIFT_DEV_PORT, ...)
//  4. Configuration file (.drift.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "drift",
	Short: "A frontend dev server and build pipeline compiler",
	Long: `Drift compiles your declarative script map and plugin set into an
ordered execution plan, then serves or builds your project from that plan.

Key Features:
  • Script mini-language ("build:js,jsx", "mount:src", "proxy:api")
  • Plugin binding for build, transform, and bundle stages
  • Implicit web_modules mount and built-in JS/TS transpilation
  • Deterministic plan ordering: proxy < mount < run < build < bundle
  • Live plan recompilation on config change

Quick Start:
  drift init                      Write a starter .drift.yml
  drift plan                      Show the compiled execution plan
  drift dev                       Start the dev loop with live reload
  drift plugins                   List registered plugins`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .drift.yml, can also use DRIFT_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system. Missing config files are
// not an error; drift falls back to the implicit defaults the compiler
// injects.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("DRIFT_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".drift")
	}

	viper.SetEnvPrefix("DRIFT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
