package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/contactkit/pkg/sanitizer"
)

func TestSingleLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"plain", "Jane Doe", "Jane Doe"},
		{"surrounding space", "  Jane  ", "Jane"},
		{"line breaks", "Jane\r\nDoe\nJr", "Jane Doe Jr"},
		{"tabs and runs", "Acme\t\t Inc", "Acme Inc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.SingleLine(tt.in))
		})
	}
}

func TestRemoveControlCharsAndNewlines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Hi\nthere\t!", sanitizer.RemoveControlChars("Hi\x00\nthere\t\x07!"))
	assert.Equal(t, "a\nb\nc", sanitizer.NormalizeNewlines("a\r\nb\rc"))
}

func TestComposeAndApply(t *testing.T) {
	t.Parallel()

	clean := sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim, strings.ToUpper)
	assert.Equal(t, "ACME", clean("\x01 acme "))
	assert.Equal(t, "acme", sanitizer.Apply(" acme ", sanitizer.Trim))
	assert.Equal(t, 3, sanitizer.Apply(1, func(n int) int { return n + 2 }))
}
