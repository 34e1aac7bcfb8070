package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shadmazumder/jsonscrub/internal/config"
	scruberrors "github.com/shadmazumder/jsonscrub/internal/errors"
	"github.com/shadmazumder/jsonscrub/internal/logging"
	"github.com/shadmazumder/jsonscrub/internal/pii"
	"github.com/shadmazumder/jsonscrub/internal/report"
	"github.com/shadmazumder/jsonscrub/internal/sanitizer"
	"github.com/shadmazumder/jsonscrub/internal/validation"
)

var (
	sanitizeOutput     string
	sanitizeFormat     string
	sanitizeKeepNulls  bool
	sanitizeKeepEmpty  bool
	sanitizeKeepArrays bool
	sanitizeNoPII      bool
	sanitizeKeywords   []string
	sanitizeRemoveKeys []string
)

// sanitizeCmd represents the sanitize command.
var sanitizeCmd = &cobra.Command{
	Use:     "sanitize <input.json>",
	Aliases: []string{"s"},
	Short:   "Sanitize a JSON document and write a cleaned report",
	Long: `Sanitize a JSON document: strip null and empty values, remove entries
with sensitive keys, redact PII inside string values, drop entries matching
keywords, and remove named root-level keys. The result is written next to
the input as <stem>_sanitized.<ext>.

Examples:
  jsonscrub sanitize input.json                       # Write input_sanitized.md
  jsonscrub sanitize input.json --format json         # Write input_sanitized.json
  jsonscrub sanitize input.json -k internal -k debug  # Also drop keyword matches
  jsonscrub sanitize input.json --remove-key id       # Also drop root-level "id"
  jsonscrub sanitize input.json --keep-nulls          # Skip structural cleanup`,
	Args: cobra.ExactArgs(1),
	RunE: runSanitizeCommand,
}

func init() {
	rootCmd.AddCommand(sanitizeCmd)

	sanitizeCmd.Flags().StringVarP(&sanitizeOutput, "output", "o", "", "Output file path (default: <stem>_sanitized.<ext> next to input)")
	sanitizeCmd.Flags().StringVarP(&sanitizeFormat, "format", "f", "", "Output format (markdown, json, yaml)")
	sanitizeCmd.Flags().BoolVar(&sanitizeKeepNulls, "keep-nulls", false, "Keep null values instead of removing them")
	sanitizeCmd.Flags().BoolVar(&sanitizeKeepEmpty, "keep-empty-strings", false, "Keep empty string values")
	sanitizeCmd.Flags().BoolVar(&sanitizeKeepArrays, "keep-empty-arrays", false, "Keep empty arrays")
	sanitizeCmd.Flags().BoolVar(&sanitizeNoPII, "no-pii", false, "Skip sensitive-key removal and PII redaction")
	sanitizeCmd.Flags().StringSliceVarP(&sanitizeKeywords, "keyword", "k", nil, "Remove entries containing this keyword (repeatable)")
	sanitizeCmd.Flags().StringSliceVarP(&sanitizeRemoveKeys, "remove-key", "r", nil, "Remove this key from root-level objects (repeatable)")
}

func runSanitizeCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)

	inputPath := args[0]
	return sanitizeFile(cmd, cfg, logger, inputPath)
}

// sanitizeFile runs the full pipeline for one input file. The watch command
// reuses it per change event.
func sanitizeFile(cmd *cobra.Command, cfg *config.Config, logger logging.Logger, inputPath string) error {
	ctx := cmd.Context()

	if err := validation.ValidateInputPath(inputPath); err != nil {
		return scruberrors.SecurityError("cmd.sanitize", inputPath, err.Error())
	}

	format, err := outputFormat(cfg)
	if err != nil {
		return err
	}

	outputPath := sanitizeOutput
	if outputPath == "" {
		outputPath = cfg.Output.Path
	}
	if outputPath == "" {
		outputPath = report.OutputPath(inputPath, format)
	}
	if err := validation.ValidateOutputPath(outputPath); err != nil {
		return scruberrors.SecurityError("cmd.sanitize", outputPath, err.Error())
	}

	logger.Info(ctx, "loading document", "path", inputPath)
	data, err := report.LoadJSON(inputPath)
	if err != nil {
		return err
	}

	opts := pipelineOptions(cmd, cfg)
	s := buildSanitizer(cfg, logger)

	logger.Info(ctx, "sanitizing",
		"remove_nulls", opts.RemoveNulls,
		"remove_pii", opts.RemovePII,
		"keywords", len(opts.Keywords),
		"remove_keys", len(opts.RemoveKeys))

	result, err := s.Sanitize(ctx, data, opts)
	if err != nil {
		return err
	}

	size, err := report.VerifyEncodable(result)
	if err != nil {
		return err
	}
	logger.Debug(ctx, "sanitized document is valid JSON", "bytes", size)

	if err := report.Save(result, outputPath, format); err != nil {
		return err
	}
	logger.Info(ctx, "sanitization complete", "output", outputPath, "format", string(format))
	fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", outputPath)

	return nil
}

// pipelineOptions merges configuration with command-line overrides.
func pipelineOptions(cmd *cobra.Command, cfg *config.Config) sanitizer.Options {
	opts := sanitizer.Options{
		RemoveNulls:        cfg.Pipeline.RemoveNulls,
		RemoveEmptyStrings: cfg.Pipeline.RemoveEmptyStrings,
		RemoveEmptyArrays:  cfg.Pipeline.RemoveEmptyArrays,
		RemovePII:          cfg.Pipeline.RemovePII,
		SensitiveKeys:      cfg.Pipeline.SensitiveKeys,
		Keywords:           cfg.Pipeline.Keywords,
		RemoveKeys:         cfg.Pipeline.RemoveKeys,
	}

	if sanitizeKeepNulls {
		opts.RemoveNulls = false
	}
	if sanitizeKeepEmpty {
		opts.RemoveEmptyStrings = false
	}
	if sanitizeKeepArrays {
		opts.RemoveEmptyArrays = false
	}
	if sanitizeNoPII {
		opts.RemovePII = false
	}
	if len(sanitizeKeywords) > 0 {
		opts.Keywords = append(opts.Keywords, sanitizeKeywords...)
	}
	if cmd.Flags().Changed("remove-key") {
		opts.RemoveKeys = sanitizeRemoveKeys
	}

	return opts
}

// outputFormat resolves the output format from the flag or configuration.
func outputFormat(cfg *config.Config) (report.Format, error) {
	name := sanitizeFormat
	if name == "" {
		name = cfg.Output.Format
	}
	return report.ParseFormat(name)
}

// buildSanitizer wires the detector stack from configuration: a remote
// analyzer when one is configured, always with the regex fallback behind it.
func buildSanitizer(cfg *config.Config, logger logging.Logger) *sanitizer.Sanitizer {
	var remote pii.Detector
	if cfg.Analyzer.URL != "" {
		remote = pii.NewRemoteAnalyzer(cfg.Analyzer.URL,
			pii.WithTimeout(time.Duration(cfg.Analyzer.Timeout)*time.Second),
			pii.WithLanguage(cfg.Analyzer.Language),
		)
	}
	return sanitizer.New(pii.NewAnonymizer(remote, logger), logger)
}
