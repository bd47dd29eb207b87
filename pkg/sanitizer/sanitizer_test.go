package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/landing/pkg/sanitizer"
)

func TestLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hero", "hero"},
		{"trimmed", "  hero  ", "hero"},
		{"line breaks", "a\nb\r\nc", "a b c"},
		{"tabs and runs", "a\t\t  b", "a b"},
		{"control runes", "a\x00b\x1b[31mc", "ab[31mc"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.Line(tt.in))
		})
	}
}

func TestDigits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "5511999999999", sanitizer.Digits("+55 (11) 99999-9999"))
	assert.Empty(t, sanitizer.Digits("abc"))
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "imó", sanitizer.Truncate(3)("imóveis"))
	assert.Equal(t, "abc", sanitizer.Truncate(5)("abc"))
	assert.Empty(t, sanitizer.Truncate(0)("abc"))
	assert.Len(t, []rune(sanitizer.Truncate(512)(strings.Repeat("é", 600))), 512)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	variant := sanitizer.Compose(sanitizer.Trim, sanitizer.Lower)
	assert.Equal(t, "mobile", variant("  Mobile "))
	assert.Equal(t, "x", sanitizer.Apply(" X ", sanitizer.Trim, sanitizer.Lower))
}
