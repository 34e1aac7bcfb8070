package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scruberrors "github.com/shadmazumder/jsonscrub/internal/errors"
)

func TestToMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{
			name: "array of records",
			input: []any{
				map[string]any{"city": "Dhaka", "id": float64(1)},
				map[string]any{"id": float64(2)},
			},
			expected: "\n## Record 1\n\n" +
				"- **city**: Dhaka\n" +
				"- **id**: 1\n" +
				"\n" +
				"\n## Record 2\n\n" +
				"- **id**: 2\n",
		},
		{
			name: "single record object",
			input: map[string]any{
				"role": "admin",
			},
			expected: "## Record\n\n- **role**: admin",
		},
		{
			name: "array values joined",
			input: map[string]any{
				"tags": []any{"a", nil, "b", " "},
			},
			expected: "## Record\n\n- **tags**: a, b",
		},
		{
			name: "nested object rendered as sub-list",
			input: map[string]any{
				"location": map[string]any{"city": "Dhaka", "zip": "1207"},
			},
			expected: "## Record\n\n- **location**:\n  - city: Dhaka\n  - zip: 1207",
		},
		{
			name: "blank scalar values skipped",
			input: map[string]any{
				"empty": "   ",
				"real":  "x",
			},
			expected: "## Record\n\n- **real**: x",
		},
		{
			name:     "scalar root printed directly",
			input:    "just text",
			expected: "just text",
		},
		{
			name: "non-object array items skipped",
			input: []any{
				"loose string",
				map[string]any{"id": float64(1)},
			},
			expected: "\n## Record 2\n\n- **id**: 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToMarkdown(tt.input))
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"markdown", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender(t *testing.T) {
	data := map[string]any{"key": "value"}

	jsonOut, err := Render(data, FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"value"}`, string(jsonOut))

	yamlOut, err := Render(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "key: value\n", string(yamlOut))

	mdOut, err := Render(data, FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, string(mdOut), "- **key**: value")
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()

	input := filepath.Join(dir, "input.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"a": [1, null, "x"]}`), 0o644))

	data, err := LoadJSON(input)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": []any{float64(1), nil, "x"}}, data)

	out := filepath.Join(dir, "out.json")
	require.NoError(t, Save(data, out, FormatJSON))

	content, err := os.ReadFile(out)
	require.NoError(t, err)

	var roundTrip any
	require.NoError(t, json.Unmarshal(content, &roundTrip))
	assert.Equal(t, data, roundTrip)
}

func TestLoadJSONErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadJSON(filepath.Join(dir, "missing.json"))
	assert.True(t, scruberrors.IsKind(err, scruberrors.KindIO))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))

	_, err = LoadJSON(bad)
	assert.True(t, scruberrors.IsKind(err, scruberrors.KindParse))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("dir", "input_sanitized.md"), OutputPath(filepath.Join("dir", "input.json"), FormatMarkdown))
	assert.Equal(t, "data_sanitized.json", OutputPath("data.json", FormatJSON))
	assert.Equal(t, "noext_sanitized.yaml", OutputPath("noext", FormatYAML))
}

func TestVerifyEncodable(t *testing.T) {
	size, err := VerifyEncodable(map[string]any{"a": float64(1)})
	require.NoError(t, err)
	assert.Greater(t, size, 0)

	_, err = VerifyEncodable(map[string]any{"bad": make(chan int)})
	assert.True(t, scruberrors.IsKind(err, scruberrors.KindRender))
}
