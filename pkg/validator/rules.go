package validator

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

func rule(field, msg string, check func() bool) Rule {
	return Rule{Check: check, Error: ValidationError{Field: field, Message: msg}}
}

// RequiredString fails on empty or whitespace-only values.
func RequiredString(field, value string) Rule {
	return rule(field, "field is required", func() bool { return strings.TrimSpace(value) != "" })
}

// MaxLenString limits the length in runes.
func MaxLenString(field, value string, max int) Rule {
	return rule(field, fmt.Sprintf("must be at most %d characters long", max), func() bool {
		return utf8.RuneCountInString(value) <= max
	})
}

func InListString(field, value string, allowed []string) Rule {
	return rule(field, "must be one of: "+strings.Join(allowed, ", "), func() bool {
		return slices.Contains(allowed, value)
	})
}

// OptionalInListString is InListString that accepts the empty string.
func OptionalInListString(field, value string, allowed []string) Rule {
	return rule(field, "must be empty or one of: "+strings.Join(allowed, ", "), func() bool {
		return value == "" || slices.Contains(allowed, value)
	})
}

func NonNegative[T Numeric](field string, value T) Rule {
	return rule(field, "cannot be negative", func() bool { return value >= 0 })
}

func MaxNum[T Numeric](field string, value, max T) Rule {
	return rule(field, fmt.Sprintf("must be at most %v", max), func() bool { return value <= max })
}

func MaxLenMap[K comparable, V any](field string, value map[K]V, max int) Rule {
	return rule(field, fmt.Sprintf("must have at most %d items", max), func() bool { return len(value) <= max })
}

// ValidUUID accepts canonical UUID strings.
func ValidUUID(field, value string) Rule {
	return rule(field, "must be a valid UUID", func() bool {
		_, err := uuid.Parse(value)
		return err == nil
	})
}

// EachMapValue builds one rule per map entry, with the field named
// "field.key". Keys are visited in sorted order so errors are stable.
func EachMapValue[V any](field string, m map[string]V, build func(field string, v V) Rule) []Rule {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	rules := make([]Rule, 0, len(keys))
	for _, k := range keys {
		rules = append(rules, build(field+"."+k, m[k]))
	}
	return rules
}
