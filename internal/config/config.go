// Package config provides configuration management for jsonscrub using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration sources, in precedence order: command-line flags, the
// JSONSCRUB_<SECTION>_<OPTION> environment variables, and a .jsonscrub.yml
// file in the current directory (or the file named by --config /
// JSONSCRUB_CONFIG_FILE).
package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Log      LogConfig      `yaml:"log"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Output   OutputConfig   `yaml:"output"`
	Analyzer AnalyzerConfig `yaml:"analyzer"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PipelineConfig struct {
	RemoveNulls        bool     `yaml:"remove_nulls"`
	RemoveEmptyStrings bool     `yaml:"remove_empty_strings"`
	RemoveEmptyArrays  bool     `yaml:"remove_empty_arrays"`
	RemovePII          bool     `yaml:"remove_pii"`
	SensitiveKeys      []string `yaml:"sensitive_keys"`
	Keywords           []string `yaml:"keywords"`
	RemoveKeys         []string `yaml:"remove_keys"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type AnalyzerConfig struct {
	URL      string `yaml:"url"`
	Language string `yaml:"language"`
	Timeout  int    `yaml:"timeout"` // seconds
}

// DefaultRemoveKeys are the root-level keys stripped when nothing else is
// configured. These match the fields the report pipeline downstream cannot
// use.
var DefaultRemoveKeys = []string{"email", "mobileNumber", "bloodGroup", "created", "lastModified"}

func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Apply defaults only where nothing was explicitly set.
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	// Workaround for viper key handling: unmarshal matches field names, not
	// the underscore keys, so read these explicitly.
	if viper.IsSet("pipeline.remove_nulls") {
		config.Pipeline.RemoveNulls = viper.GetBool("pipeline.remove_nulls")
	} else {
		config.Pipeline.RemoveNulls = true
	}
	if viper.IsSet("pipeline.remove_empty_strings") {
		config.Pipeline.RemoveEmptyStrings = viper.GetBool("pipeline.remove_empty_strings")
	} else {
		config.Pipeline.RemoveEmptyStrings = true
	}
	if viper.IsSet("pipeline.remove_empty_arrays") {
		config.Pipeline.RemoveEmptyArrays = viper.GetBool("pipeline.remove_empty_arrays")
	} else {
		config.Pipeline.RemoveEmptyArrays = true
	}
	if viper.IsSet("pipeline.remove_pii") {
		config.Pipeline.RemovePII = viper.GetBool("pipeline.remove_pii")
	} else {
		config.Pipeline.RemovePII = true
	}

	if viper.IsSet("pipeline.remove_keys") {
		config.Pipeline.RemoveKeys = viper.GetStringSlice("pipeline.remove_keys")
	} else if len(config.Pipeline.RemoveKeys) == 0 {
		config.Pipeline.RemoveKeys = append([]string(nil), DefaultRemoveKeys...)
	}
	if viper.IsSet("pipeline.keywords") && len(config.Pipeline.Keywords) == 0 {
		config.Pipeline.Keywords = viper.GetStringSlice("pipeline.keywords")
	}
	if viper.IsSet("pipeline.sensitive_keys") && len(config.Pipeline.SensitiveKeys) == 0 {
		config.Pipeline.SensitiveKeys = viper.GetStringSlice("pipeline.sensitive_keys")
	}

	if config.Output.Format == "" {
		config.Output.Format = "markdown"
	}

	if config.Analyzer.Language == "" {
		config.Analyzer.Language = "en"
	}
	if config.Analyzer.Timeout == 0 {
		config.Analyzer.Timeout = 10
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}
