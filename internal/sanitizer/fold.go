package sanitizer

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// fold normalizes a string for matching: NFC normalization followed by
// lowercasing, so composed and decomposed forms of the same text compare
// equal regardless of case.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

// containsAnyFold reports whether s contains any of the needles under
// folded comparison. Empty needles never match.
func containsAnyFold(s string, needles []string) bool {
	if len(needles) == 0 {
		return false
	}
	folded := fold(s)
	for _, needle := range needles {
		if needle == "" {
			continue
		}
		if strings.Contains(folded, fold(needle)) {
			return true
		}
	}
	return false
}
