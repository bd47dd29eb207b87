// Package sanitizer holds small string transforms that compose into
// pipelines. Beacon fields and catalogue values pass through them before
// they are validated or rendered.
package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Apply runs value through transforms in order.
func Apply[T any](value T, transforms ...func(T) T) T {
	for _, transform := range transforms {
		value = transform(value)
	}
	return value
}

// Compose returns a reusable pipeline of transforms.
func Compose[T any](transforms ...func(T) T) func(T) T {
	return func(value T) T { return Apply(value, transforms...) }
}

func Trim(s string) string { return strings.TrimSpace(s) }

func Lower(s string) string { return strings.ToLower(s) }

// RemoveControlChars drops control runes, line breaks and tabs included.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// SingleLine collapses every run of whitespace into one space and trims the
// ends.
func SingleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Digits keeps only ASCII digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// Truncate returns a transform that cuts strings to at most n runes.
func Truncate(n int) func(string) string {
	return func(s string) string {
		if n <= 0 {
			return ""
		}
		if utf8.RuneCountInString(s) <= n {
			return s
		}
		return string([]rune(s)[:n])
	}
}

// Line cleans free text that must fit on one log line.
var Line = Compose(RemoveControlChars, SingleLine)
