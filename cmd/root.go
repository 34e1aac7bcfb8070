// Package cmd provides the command-line interface for jsonscrub with
// configuration management supporting multiple configuration sources.
//
// Configuration System:
//
//	The CLI supports flexible configuration through multiple sources with clear precedence:
//	1. Command-line flags (--config, --format, etc.) - highest priority
//	2. JSONSCRUB_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (JSONSCRUB_OUTPUT_FORMAT, etc.)
//	4. Configuration files (.jsonscrub.yml) - lowest priority
//
// Environment Variables:
//
//	JSONSCRUB_CONFIG_FILE: Path to custom configuration file
//	JSONSCRUB_LOG_LEVEL: Override log level
//	JSONSCRUB_ANALYZER_URL: Remote PII analyzer endpoint
//	And more following the JSONSCRUB_<SECTION>_<OPTION> pattern
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shadmazumder/jsonscrub/internal/config"
	"github.com/shadmazumder/jsonscrub/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "jsonscrub",
	Short: "Sanitize JSON documents by removing nulls, PII, keywords, and keys",
	Long: `jsonscrub cleans JSON documents for safe downstream use. It strips
null and empty values, removes entries with sensitive keys, redacts
personally identifiable information inside string values, optionally drops
entries matching keywords or named root-level keys, and renders the result
as a readable Markdown report (or JSON/YAML).

PII detection delegates to a remote analyzer service when one is configured
(analyzer.url); otherwise a built-in regex detector covers emails, phone
numbers, SSNs, credit cards, and IP addresses.

Quick Start:
  jsonscrub sanitize input.json            Sanitize and write input_sanitized.md
  jsonscrub scan input.json                Report PII findings without changes
  jsonscrub watch input.json               Re-sanitize whenever the file changes

Command Aliases (for faster typing):
  sanitize (s), scan (c), watch (w)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .jsonscrub.yml, can also use JSONSCRUB_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system.
//
// Configuration Loading Priority (highest to lowest):
//  1. --config flag: Explicitly specified config file path
//  2. JSONSCRUB_CONFIG_FILE environment variable: Custom config file path
//  3. Default: .jsonscrub.yml in current directory
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("JSONSCRUB_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".jsonscrub")
	}

	viper.SetEnvPrefix("JSONSCRUB")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing config file is fine; defaults apply.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the process logger from the loaded configuration.
func newLogger(cfg *config.Config) logging.Logger {
	return logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: os.Stderr,
	})
}
