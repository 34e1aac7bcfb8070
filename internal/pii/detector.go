package pii

import (
	"context"
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Detector finds PII entities in text.
type Detector interface {
	Detect(ctx context.Context, text string) ([]Entity, error)
}

// regexRule pairs a compiled pattern with the entity type it detects and an
// optional verifier that rejects false positives.
type regexRule struct {
	pattern *regexp.Regexp
	typ     string
	verify  func(match string) bool
}

// regexRules is the ordered list of built-in detection patterns. The score
// is fixed at 0.9 for all regex findings since patterns are high-confidence
// but not context-aware.
var regexRules = []regexRule{
	{
		pattern: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		typ:     TypeEmailAddress,
	},
	{
		// US phone numbers: 555-123-4567, 555.123.4567, 5551234567.
		pattern: regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`),
		typ:     TypePhoneNumber,
	},
	{
		pattern: regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`),
		typ:     TypeSSN,
	},
	{
		pattern: regexp.MustCompile(`\b\d{4}[-\s]?\d{4}[-\s]?\d{4}[-\s]?\d{4}\b`),
		typ:     TypeCreditCard,
		verify: func(match string) bool {
			digits := strings.NewReplacer("-", "", " ", "").Replace(match)
			return govalidator.IsCreditCard(digits)
		},
	},
	{
		pattern: regexp.MustCompile(`\b\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}\b`),
		typ:     TypeIPAddress,
		verify:  govalidator.IsIPv4,
	},
}

// RegexDetector detects PII using the built-in pattern table. It is the
// fallback when no remote analyzer is configured or the analyzer fails.
type RegexDetector struct{}

// NewRegexDetector creates a regex-based detector.
func NewRegexDetector() *RegexDetector {
	return &RegexDetector{}
}

// regexScore is the confidence assigned to every regex finding.
const regexScore = 0.9

// Detect scans text against all built-in patterns. It never returns an
// error; the error return satisfies the Detector interface.
func (d *RegexDetector) Detect(_ context.Context, text string) ([]Entity, error) {
	var entities []Entity
	for _, rule := range regexRules {
		for _, loc := range rule.pattern.FindAllStringIndex(text, -1) {
			match := text[loc[0]:loc[1]]
			if rule.verify != nil && !rule.verify(match) {
				continue
			}
			entities = append(entities, Entity{
				Type:  rule.typ,
				Start: loc[0],
				End:   loc[1],
				Score: regexScore,
			})
		}
	}
	return entities, nil
}
