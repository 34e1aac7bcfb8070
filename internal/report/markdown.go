// Package report renders sanitized JSON documents as readable reports and
// writes them to disk. Markdown is the primary format; JSON and YAML are
// available for machine consumption.
package report

import (
	"fmt"
	"sort"
	"strings"
)

// ToMarkdown renders a sanitized document as Markdown. A root array of
// objects becomes numbered "Record N" sections; a root object becomes a
// single "Record" section; scalars are printed as-is. Map keys are sorted
// so output is deterministic.
func ToMarkdown(data any) string {
	var lines []string

	switch v := data.(type) {
	case []any:
		for i, item := range v {
			record, ok := item.(map[string]any)
			if !ok {
				continue
			}
			lines = append(lines, fmt.Sprintf("\n## Record %d\n", i+1))
			lines = append(lines, recordLines(record)...)
			lines = append(lines, "")
		}

	case map[string]any:
		lines = append(lines, "## Record\n")
		lines = append(lines, recordLines(v)...)

	default:
		lines = append(lines, fmt.Sprint(data))
	}

	return strings.Join(lines, "\n")
}

// recordLines renders one object's fields as a Markdown bullet list.
func recordLines(record map[string]any) []string {
	var lines []string
	for _, key := range sortedKeys(record) {
		switch value := record[key].(type) {
		case []any:
			if items := joinItems(value); items != "" {
				lines = append(lines, fmt.Sprintf("- **%s**: %s", key, items))
			}
		case map[string]any:
			lines = append(lines, fmt.Sprintf("- **%s**:", key))
			for _, k := range sortedKeys(value) {
				lines = append(lines, fmt.Sprintf("  - %s: %v", k, value[k]))
			}
		default:
			if value == nil {
				continue
			}
			if s := strings.TrimSpace(fmt.Sprint(value)); s != "" {
				lines = append(lines, fmt.Sprintf("- **%s**: %v", key, value))
			}
		}
	}
	return lines
}

// joinItems flattens an array into a comma-separated string, skipping nils
// and blank entries.
func joinItems(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		s := fmt.Sprint(item)
		if strings.TrimSpace(s) == "" {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
