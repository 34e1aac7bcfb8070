package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Validate checks the loaded configuration for values that would fail
// later in the pipeline. Section structs implement validation.Validatable,
// so including the field is enough to validate it.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Log),
		validation.Field(&c.Output),
		validation.Field(&c.Analyzer),
	)
}

// Validate implements validation.Validatable.
func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.In("debug", "info", "warn", "warning", "error")),
		validation.Field(&l.Format, validation.In("text", "json")),
	)
}

// Validate implements validation.Validatable.
func (o OutputConfig) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Format, validation.In("markdown", "md", "json", "yaml", "yml")),
	)
}

// Validate implements validation.Validatable.
func (a AnalyzerConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.URL, is.URL),
		validation.Field(&a.Timeout, validation.Min(1), validation.Max(300)),
	)
}
