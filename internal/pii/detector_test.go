package pii

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexDetector(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantTypes []string
	}{
		{
			name:      "email",
			text:      "contact: jane.doe+spam@example.co.uk please",
			wantTypes: []string{TypeEmailAddress},
		},
		{
			name:      "phone with dashes",
			text:      "call 555-123-4567 now",
			wantTypes: []string{TypePhoneNumber},
		},
		{
			name:      "phone with dots",
			text:      "call 555.123.4567 now",
			wantTypes: []string{TypePhoneNumber},
		},
		{
			name:      "ssn",
			text:      "ssn 123-45-6789 on file",
			wantTypes: []string{TypeSSN},
		},
		{
			name:      "valid credit card passes luhn",
			text:      "card 4111-1111-1111-1111 charged",
			wantTypes: []string{TypeCreditCard},
		},
		{
			name:      "luhn-invalid card number rejected",
			text:      "card 1234-5678-9012-3456 charged",
			wantTypes: nil,
		},
		{
			name:      "ip address",
			text:      "from 192.168.1.50",
			wantTypes: []string{TypeIPAddress},
		},
		{
			name:      "invalid ip rejected",
			text:      "version 999.999.999.999 here",
			wantTypes: nil,
		},
		{
			name:      "clean text",
			text:      "nothing sensitive here",
			wantTypes: nil,
		},
		{
			name:      "multiple findings",
			text:      "jane@example.com at 10.0.0.1",
			wantTypes: []string{TypeEmailAddress, TypeIPAddress},
		},
	}

	d := NewRegexDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities, err := d.Detect(context.Background(), tt.text)
			require.NoError(t, err)

			var got []string
			for _, e := range entities {
				got = append(got, e.Type)
				assert.Equal(t, 0.9, e.Score)
				assert.GreaterOrEqual(t, e.Start, 0)
				assert.LessOrEqual(t, e.End, len(tt.text))
				assert.Less(t, e.Start, e.End)
			}
			assert.ElementsMatch(t, tt.wantTypes, got)
		})
	}
}

func TestRegexDetectorOffsets(t *testing.T) {
	d := NewRegexDetector()
	text := "before jane@example.com after"

	entities, err := d.Detect(context.Background(), text)
	require.NoError(t, err)
	require.Len(t, entities, 1)

	assert.Equal(t, "jane@example.com", text[entities[0].Start:entities[0].End])
}

func TestEntityPlaceholder(t *testing.T) {
	e := Entity{Type: TypeEmailAddress}
	assert.Equal(t, "[EMAIL_ADDRESS_REDACTED]", e.Placeholder())
}
