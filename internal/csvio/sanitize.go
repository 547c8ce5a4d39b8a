package csvio

import (
	"regexp"
	"strings"
)

const maxTextLength = 200

var scriptTagPattern = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)

// SanitizeText cleans a free-text field from an imported file: script
// tags and angle brackets are stripped, a leading formula-injection
// character (=, +, -, @) is neutralized with a quote prefix, and the
// result is truncated to 200 characters.
func SanitizeText(s string) string {
	s = scriptTagPattern.ReplaceAllString(s, "")
	s = strings.NewReplacer("<", "", ">", "").Replace(s)
	s = strings.TrimSpace(s)

	if s != "" && strings.ContainsAny(s[:1], "=+-@") {
		s = "'" + s
	}

	if runes := []rune(s); len(runes) > maxTextLength {
		s = string(runes[:maxTextLength])
	}
	return s
}
