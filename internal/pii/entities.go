// Package pii provides detection and redaction of personally identifiable
// information in text. Detection is delegated to a remote analyzer service
// when one is configured; a built-in regex detector covers the
// high-confidence structured formats and serves as the fallback.
package pii

import "fmt"

// Entity types reported by the detectors. The remote analyzer may report
// additional types; the placeholder format handles any type name.
const (
	TypeEmailAddress = "EMAIL_ADDRESS"
	TypePhoneNumber  = "PHONE_NUMBER"
	TypeSSN          = "SSN"
	TypeCreditCard   = "CREDIT_CARD"
	TypeIPAddress    = "IP_ADDRESS"
)

// Entity is a single PII finding within a text value. Start and End are
// byte offsets into the analyzed string.
type Entity struct {
	Type  string  `json:"entity_type"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"`
}

// Placeholder returns the redaction placeholder for the entity.
func (e Entity) Placeholder() string {
	return fmt.Sprintf("[%s_REDACTED]", e.Type)
}
