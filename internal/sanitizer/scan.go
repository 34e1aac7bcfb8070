package sanitizer

import (
	"context"
	"fmt"
	"sort"

	"github.com/shadmazumder/jsonscrub/internal/pii"
)

// Finding is one PII detection result attached to its location in the
// document.
type Finding struct {
	// Path locates the string value, e.g. $.users[2].bio.
	Path string `json:"path"`
	// Type is the detected entity type.
	Type string `json:"entity_type"`
	// Score is the detector's confidence.
	Score float64 `json:"score"`
	// Match is the matched text.
	Match string `json:"match"`
}

// detectorSource exposes raw detection results; *pii.Anonymizer satisfies it.
type detectorSource interface {
	Detect(ctx context.Context, text string) []pii.Entity
}

// Scan walks the document and reports every PII finding in its string
// values without modifying anything. Results are ordered by path.
func (s *Sanitizer) Scan(ctx context.Context, data any) ([]Finding, error) {
	src, ok := s.anonymizer.(detectorSource)
	if !ok {
		src = detectOnly{pii.NewRegexDetector()}
	}

	var findings []Finding
	if err := s.scan(ctx, data, "$", src, &findings); err != nil {
		return nil, err
	}
	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Path != findings[j].Path {
			return findings[i].Path < findings[j].Path
		}
		return findings[i].Match < findings[j].Match
	})
	return findings, nil
}

func (s *Sanitizer) scan(ctx context.Context, data any, path string, src detectorSource, out *[]Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch v := data.(type) {
	case map[string]any:
		for _, key := range sortedKeys(v) {
			if err := s.scan(ctx, v[key], path+"."+key, src, out); err != nil {
				return err
			}
		}

	case []any:
		for i, item := range v {
			if err := s.scan(ctx, item, fmt.Sprintf("%s[%d]", path, i), src, out); err != nil {
				return err
			}
		}

	case string:
		for _, e := range src.Detect(ctx, v) {
			match := ""
			if e.Start >= 0 && e.End <= len(v) && e.Start <= e.End {
				match = v[e.Start:e.End]
			}
			*out = append(*out, Finding{
				Path:  path,
				Type:  e.Type,
				Score: e.Score,
				Match: match,
			})
		}
	}
	return nil
}

// detectOnly adapts a pii.Detector to the detectorSource shape, swallowing
// errors the way the anonymizer's fallback path does.
type detectOnly struct {
	d pii.Detector
}

func (d detectOnly) Detect(ctx context.Context, text string) []pii.Entity {
	entities, _ := d.d.Detect(ctx, text)
	return entities
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
