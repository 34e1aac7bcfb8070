// Package sanitizer implements the JSON sanitization pipeline: recursive
// removal of null and empty values, sensitive-entry removal with PII
// redaction, keyword-based entry removal, and root-level key removal.
//
// Values are the generic encoding/json form: map[string]any, []any, string,
// float64, bool, and nil. Every transform returns a new tree; inputs are
// never mutated.
//
// Stage order is fixed and meaningful: null removal runs first so later
// stages see a compact tree, and it re-runs after the keyword and key
// stages to sweep containers those stages emptied.
package sanitizer

import (
	"context"

	"github.com/shadmazumder/jsonscrub/internal/logging"
	"github.com/shadmazumder/jsonscrub/internal/pii"
)

// Anonymizer redacts PII inside a single string value.
type Anonymizer interface {
	Anonymize(ctx context.Context, text string) string
}

// Sanitizer applies the sanitization pipeline to decoded JSON values.
type Sanitizer struct {
	anonymizer Anonymizer
	logger     logging.Logger
}

// New creates a Sanitizer. anonymizer may be nil, in which case a regex
// detector without a remote analyzer is used.
func New(anonymizer Anonymizer, logger logging.Logger) *Sanitizer {
	if anonymizer == nil {
		anonymizer = pii.NewAnonymizer(nil, logger)
	}
	return &Sanitizer{
		anonymizer: anonymizer,
		logger:     logger.WithComponent("sanitizer"),
	}
}

// Sanitize runs the full pipeline in fixed order: null removal, PII
// removal, keyword removal (followed by null removal), key removal
// (followed by null removal). Stages are skipped when disabled or when
// they have nothing to do.
func (s *Sanitizer) Sanitize(ctx context.Context, data any, opts Options) (any, error) {
	result := data

	if opts.RemoveNulls {
		result = s.RemoveNulls(result, opts)
	}

	if opts.RemovePII {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result = s.RemoveSensitive(ctx, result, opts.sensitiveKeys())
	}

	if len(opts.Keywords) > 0 {
		result = s.RemoveKeywords(result, opts.Keywords)
		result = s.RemoveNulls(result, opts)
	}

	if len(opts.RemoveKeys) > 0 {
		result = s.RemoveKeys(result, opts.RemoveKeys, true)
		result = s.RemoveNulls(result, opts)
	}

	return result, nil
}

func (o Options) sensitiveKeys() []string {
	if len(o.SensitiveKeys) > 0 {
		return o.SensitiveKeys
	}
	return DefaultSensitiveKeys
}

// RemoveNulls recursively removes nil values from maps and arrays, plus
// empty strings and empty arrays when enabled. Empty maps are kept: an
// object that became empty still marks where a record was.
func (s *Sanitizer) RemoveNulls(data any, opts Options) any {
	switch v := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			if value == nil {
				continue
			}
			processed := s.RemoveNulls(value, opts)
			if dropValue(processed, opts) {
				continue
			}
			result[key] = processed
		}
		return result

	case []any:
		result := make([]any, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			processed := s.RemoveNulls(item, opts)
			if dropValue(processed, opts) {
				continue
			}
			result = append(result, processed)
		}
		return result

	default:
		return data
	}
}

// dropValue reports whether a processed value should be omitted from its
// parent container.
func dropValue(v any, opts Options) bool {
	if v == nil {
		return true
	}
	if opts.RemoveEmptyStrings {
		if str, ok := v.(string); ok && str == "" {
			return true
		}
	}
	if opts.RemoveEmptyArrays {
		if arr, ok := v.([]any); ok && len(arr) == 0 {
			return true
		}
	}
	return false
}

// RemoveSensitive recursively removes map entries whose keys contain a
// sensitive substring and redacts PII in all remaining string values.
func (s *Sanitizer) RemoveSensitive(ctx context.Context, data any, sensitiveKeys []string) any {
	switch v := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			if containsAnyFold(key, sensitiveKeys) {
				continue
			}
			result[key] = s.RemoveSensitive(ctx, value, sensitiveKeys)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = s.RemoveSensitive(ctx, item, sensitiveKeys)
		}
		return result

	case string:
		return s.anonymizer.Anonymize(ctx, v)

	default:
		return data
	}
}

// RemoveKeywords removes map entries whose key or string value contains any
// keyword (case-insensitive). Matching strings elsewhere become nil so a
// following RemoveNulls pass sweeps them.
func (s *Sanitizer) RemoveKeywords(data any, keywords []string) any {
	switch v := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			if containsAnyFold(key, keywords) {
				continue
			}
			if str, ok := value.(string); ok && containsAnyFold(str, keywords) {
				continue
			}
			result[key] = s.RemoveKeywords(value, keywords)
		}
		return result

	case []any:
		result := make([]any, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			result = append(result, s.RemoveKeywords(item, keywords))
		}
		return result

	case string:
		if containsAnyFold(v, keywords) {
			return nil
		}
		return v

	default:
		return data
	}
}

// RemoveKeys removes the named keys from root-level objects. When the root
// is an array, each element counts as root level. Nested objects are
// traversed but never stripped.
func (s *Sanitizer) RemoveKeys(data any, keys []string, rootLevel bool) any {
	remove := make(map[string]bool, len(keys))
	for _, k := range keys {
		remove[k] = true
	}
	return s.removeKeys(data, remove, rootLevel)
}

func (s *Sanitizer) removeKeys(data any, remove map[string]bool, rootLevel bool) any {
	switch v := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, value := range v {
			if rootLevel && remove[key] {
				continue
			}
			result[key] = s.removeKeys(value, remove, false)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, item := range v {
			result[i] = s.removeKeys(item, remove, rootLevel)
		}
		return result

	default:
		return data
	}
}
