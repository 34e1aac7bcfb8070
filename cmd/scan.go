package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shadmazumder/jsonscrub/internal/config"
	scruberrors "github.com/shadmazumder/jsonscrub/internal/errors"
	"github.com/shadmazumder/jsonscrub/internal/report"
	"github.com/shadmazumder/jsonscrub/internal/validation"
)

var scanFormat string

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:     "scan <input.json>",
	Aliases: []string{"c"},
	Short:   "Report PII findings in a JSON document without modifying it",
	Long: `Scan walks the document and reports every PII finding in its string
values: the JSON path, the detected entity type, the confidence score, and
the matched text. Nothing is written or modified.

Examples:
  jsonscrub scan input.json                 # Human-readable findings
  jsonscrub scan input.json --format json   # Machine-readable findings`,
	Args: cobra.ExactArgs(1),
	RunE: runScanCommand,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "text", "Output format (text, json)")
}

func runScanCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg)
	ctx := cmd.Context()

	inputPath := args[0]
	if err := validation.ValidateInputPath(inputPath); err != nil {
		return scruberrors.SecurityError("cmd.scan", inputPath, err.Error())
	}

	data, err := report.LoadJSON(inputPath)
	if err != nil {
		return err
	}

	s := buildSanitizer(cfg, logger)
	findings, err := s.Scan(ctx, data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch scanFormat {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(findings); err != nil {
			return err
		}
	default:
		if len(findings) == 0 {
			fmt.Fprintln(out, "No PII findings")
			return nil
		}
		for _, f := range findings {
			fmt.Fprintf(out, "%s  %s (%.2f)  %s\n", f.Path, f.Type, f.Score, f.Match)
		}
		fmt.Fprintf(out, "\n%d finding(s)\n", len(findings))
	}

	logger.Debug(ctx, "scan complete", "findings", len(findings))
	return nil
}
