package pii

import (
	"context"
	"sort"

	"github.com/shadmazumder/jsonscrub/internal/logging"
)

// Anonymizer redacts PII in text values. When a remote analyzer is
// configured it is tried first; any analyzer error falls back to the
// built-in regex detector so sanitization always completes.
type Anonymizer struct {
	remote   Detector
	fallback Detector
	logger   logging.Logger
}

// NewAnonymizer creates an anonymizer. remote may be nil, in which case
// only the regex detector is used.
func NewAnonymizer(remote Detector, logger logging.Logger) *Anonymizer {
	return &Anonymizer{
		remote:   remote,
		fallback: NewRegexDetector(),
		logger:   logger.WithComponent("pii"),
	}
}

// Anonymize replaces every detected entity in text with its placeholder.
// It never fails: analyzer errors degrade to the regex fallback, and a
// text with no findings is returned unchanged.
func (a *Anonymizer) Anonymize(ctx context.Context, text string) string {
	if text == "" {
		return text
	}

	entities := a.detect(ctx, text)
	if len(entities) == 0 {
		return text
	}

	// Replace from the end of the string toward the start so earlier
	// offsets stay valid as the text shrinks or grows.
	sort.Slice(entities, func(i, j int) bool {
		return entities[i].Start > entities[j].Start
	})

	out := text
	for _, e := range entities {
		if e.Start < 0 || e.End > len(out) || e.Start > e.End {
			continue
		}
		out = out[:e.Start] + e.Placeholder() + out[e.End:]
	}
	return out
}

// Detect returns all findings for text, using the remote analyzer when
// available and falling back to regex detection on error.
func (a *Anonymizer) Detect(ctx context.Context, text string) []Entity {
	return a.detect(ctx, text)
}

func (a *Anonymizer) detect(ctx context.Context, text string) []Entity {
	if a.remote != nil {
		entities, err := a.remote.Detect(ctx, text)
		if err == nil {
			return entities
		}
		a.logger.Warn(ctx, err, "analyzer unavailable, using regex fallback")
	}
	entities, _ := a.fallback.Detect(ctx, text)
	return entities
}
