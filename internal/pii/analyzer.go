package pii

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"
)

// RemoteAnalyzer delegates PII detection to an external analyzer service
// exposing a Presidio-style /analyze endpoint.
type RemoteAnalyzer struct {
	url      string
	language string
	client   *http.Client
}

// RemoteOption configures a RemoteAnalyzer.
type RemoteOption func(*RemoteAnalyzer)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) RemoteOption {
	return func(a *RemoteAnalyzer) {
		a.client.Timeout = d
	}
}

// WithLanguage sets the language hint sent to the analyzer.
func WithLanguage(lang string) RemoteOption {
	return func(a *RemoteAnalyzer) {
		a.language = lang
	}
}

// NewRemoteAnalyzer creates a detector backed by an external analyzer
// service at the given base URL.
func NewRemoteAnalyzer(url string, opts ...RemoteOption) *RemoteAnalyzer {
	a := &RemoteAnalyzer{
		url:      url,
		language: "en",
		client:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// analyzeRequest is the request body for the analyzer service.
type analyzeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// Detect sends text to the analyzer service and converts the findings to
// entities. The service reports character offsets; Detect converts them to
// byte offsets so substitution works on Go strings.
func (a *RemoteAnalyzer) Detect(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(analyzeRequest{Text: text, Language: a.language})
	if err != nil {
		return nil, fmt.Errorf("encoding analyze request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling analyzer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("analyzer returned status %d", resp.StatusCode)
	}

	var findings []Entity
	if err := json.NewDecoder(resp.Body).Decode(&findings); err != nil {
		return nil, fmt.Errorf("decoding analyzer response: %w", err)
	}

	entities := make([]Entity, 0, len(findings))
	for _, f := range findings {
		start, end, ok := runeSpanToBytes(text, f.Start, f.End)
		if !ok {
			continue
		}
		f.Start, f.End = start, end
		entities = append(entities, f)
	}
	return entities, nil
}

// runeSpanToBytes converts a [start,end) span in rune offsets to byte
// offsets. Returns ok=false if the span is out of range.
func runeSpanToBytes(text string, start, end int) (int, int, bool) {
	if start < 0 || end < start {
		return 0, 0, false
	}
	byteStart, byteEnd := -1, -1
	runeIdx := 0
	for byteIdx := range text {
		if runeIdx == start {
			byteStart = byteIdx
		}
		if runeIdx == end {
			byteEnd = byteIdx
		}
		runeIdx++
	}
	if runeIdx < end {
		return 0, 0, false
	}
	if byteStart == -1 {
		if start == runeIdx {
			byteStart = len(text)
		} else {
			return 0, 0, false
		}
	}
	if byteEnd == -1 {
		byteEnd = len(text)
	}
	if !utf8.ValidString(text[byteStart:byteEnd]) {
		return 0, 0, false
	}
	return byteStart, byteEnd, true
}
