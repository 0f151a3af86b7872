package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func Trim(s string) string {
	return strings.TrimSpace(s)
}

func TrimToLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CollapseWhitespace replaces runs of whitespace with a single space and trims the ends.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// RemoveControlChars drops control characters, including newlines and tabs.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// DisplayName cleans a user-supplied display name into a single printable line.
var DisplayName = Compose(RemoveControlChars, CollapseWhitespace)
