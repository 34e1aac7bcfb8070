package sanitizer

// Options controls which pipeline stages run and how.
type Options struct {
	// RemoveNulls enables the structural cleanup stage.
	RemoveNulls bool
	// RemoveEmptyStrings drops "" values during null removal.
	RemoveEmptyStrings bool
	// RemoveEmptyArrays drops empty arrays during null removal.
	RemoveEmptyArrays bool

	// RemovePII enables the sensitive-key and text-redaction stage.
	RemovePII bool
	// SensitiveKeys overrides the built-in sensitive key substrings.
	// Empty means DefaultSensitiveKeys.
	SensitiveKeys []string

	// Keywords removes entries whose keys or string values contain any of
	// these (case-insensitive).
	Keywords []string

	// RemoveKeys removes these keys from root-level objects.
	RemoveKeys []string
}

// DefaultOptions returns the options the CLI uses when nothing is
// overridden: full structural cleanup plus PII redaction.
func DefaultOptions() Options {
	return Options{
		RemoveNulls:        true,
		RemoveEmptyStrings: true,
		RemoveEmptyArrays:  true,
		RemovePII:          true,
	}
}

// DefaultSensitiveKeys are the key substrings that mark a map entry as
// sensitive. Matching is case-insensitive and substring-based, so
// "userEmail" and "EMAIL_ADDR" both match "email".
var DefaultSensitiveKeys = []string{
	"password", "passwd", "secret", "token", "api_key",
	"ssn", "social_security", "credit_card", "card_number",
	"email", "phone", "address", "name", "dob", "birth_date",
}
