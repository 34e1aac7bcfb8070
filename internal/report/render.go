package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	scruberrors "github.com/shadmazumder/jsonscrub/internal/errors"
)

// Format identifies an output rendering.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// ParseFormat converts a format name to a Format. Common aliases (md, yml)
// are accepted.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (markdown, json, yaml)", s)
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "md"
	}
}

// Render encodes a sanitized document in the requested format.
func Render(data any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return nil, scruberrors.Wrap(scruberrors.KindRender, "report.Render", "encoding JSON", err)
		}
		return out, nil

	case FormatYAML:
		out, err := yaml.Marshal(data)
		if err != nil {
			return nil, scruberrors.Wrap(scruberrors.KindRender, "report.Render", "encoding YAML", err)
		}
		return out, nil

	default:
		return []byte(ToMarkdown(data)), nil
	}
}

// Save renders the document and writes it to path.
func Save(data any, path string, format Format) error {
	content, err := Render(data, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return scruberrors.IOError("report.Save", path, err)
	}
	return nil
}

// OutputPath derives the default output file name from the input file:
// the input stem plus "_sanitized" and the format's extension, in the same
// directory as the input.
func OutputPath(inputPath string, format Format) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(inputPath), stem+"_sanitized."+format.Extension())
}
