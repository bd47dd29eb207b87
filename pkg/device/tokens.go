package device

import (
	"strings"

	"golang.org/x/text/cases"
)

// keywordSet keeps tokens in declaration order so the reported match is stable.
type keywordSet []string

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, 0, len(keywords))
	for _, word := range keywords {
		word = fold(strings.TrimSpace(word))
		if word != "" {
			result = append(result, word)
		}
	}
	return result
}

// match returns the first keyword contained in s. s must already be folded.
func (k keywordSet) match(s string) (string, bool) {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return keyword, true
		}
	}
	return "", false
}

// fold lower-cases s for case-insensitive matching.
// A new Caser per call: casers carry state and are not safe to share.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Default token sets. Platform names first, then vendors seen on
// Android handsets that do not always advertise "mobile".
var (
	defaultMobileTokens = []string{
		"android", "webos", "iphone", "ipad", "ipod",
		"blackberry", "windows phone", "mobile", "tablet",
		"samsung", "huawei", "xiaomi", "oppo", "vivo",
		"realme", "oneplus", "nokia", "sony", "lg",
	}

	defaultTabletTokens = []string{"ipad", "tablet", "kindle", "silk"}
)

// MobileTokens returns a copy of the default mobile token list.
func MobileTokens() []string { return append([]string(nil), defaultMobileTokens...) }

// TabletTokens returns a copy of the default tablet token list.
func TabletTokens() []string { return append([]string(nil), defaultTabletTokens...) }
