package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		setup       func()
		expectError bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "defaults applied",
			setup: func() {
				viper.Reset()
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.Log.Level)
				assert.Equal(t, "text", cfg.Log.Format)
				assert.True(t, cfg.Pipeline.RemoveNulls)
				assert.True(t, cfg.Pipeline.RemoveEmptyStrings)
				assert.True(t, cfg.Pipeline.RemoveEmptyArrays)
				assert.True(t, cfg.Pipeline.RemovePII)
				assert.Equal(t, DefaultRemoveKeys, cfg.Pipeline.RemoveKeys)
				assert.Equal(t, "markdown", cfg.Output.Format)
				assert.Equal(t, "en", cfg.Analyzer.Language)
				assert.Equal(t, 10, cfg.Analyzer.Timeout)
			},
		},
		{
			name: "explicit pipeline toggles respected",
			setup: func() {
				viper.Reset()
				viper.Set("pipeline.remove_nulls", false)
				viper.Set("pipeline.remove_pii", false)
			},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Pipeline.RemoveNulls)
				assert.False(t, cfg.Pipeline.RemovePII)
				assert.True(t, cfg.Pipeline.RemoveEmptyStrings)
			},
		},
		{
			name: "custom remove keys replace defaults",
			setup: func() {
				viper.Reset()
				viper.Set("pipeline.remove_keys", []string{"id", "created"})
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"id", "created"}, cfg.Pipeline.RemoveKeys)
			},
		},
		{
			name: "keywords from config",
			setup: func() {
				viper.Reset()
				viper.Set("pipeline.keywords", []string{"internal", "debug"})
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"internal", "debug"}, cfg.Pipeline.Keywords)
			},
		},
		{
			name: "analyzer settings",
			setup: func() {
				viper.Reset()
				viper.Set("analyzer.url", "http://localhost:5002/analyze")
				viper.Set("analyzer.timeout", 30)
				viper.Set("analyzer.language", "de")
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "http://localhost:5002/analyze", cfg.Analyzer.URL)
				assert.Equal(t, 30, cfg.Analyzer.Timeout)
				assert.Equal(t, "de", cfg.Analyzer.Language)
			},
		},
		{
			name: "invalid log level rejected",
			setup: func() {
				viper.Reset()
				viper.Set("log.level", "loud")
			},
			expectError: true,
		},
		{
			name: "invalid output format rejected",
			setup: func() {
				viper.Reset()
				viper.Set("output.format", "xml")
			},
			expectError: true,
		},
		{
			name: "invalid analyzer url rejected",
			setup: func() {
				viper.Reset()
				viper.Set("analyzer.url", "not a url")
			},
			expectError: true,
		},
		{
			name: "timeout out of range rejected",
			setup: func() {
				viper.Reset()
				viper.Set("analyzer.timeout", 9000)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			cfg, err := Load()

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.check(t, cfg)
		})
	}
}
