package validation

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeOutput escapes a value for embedding in rendered markup.
// Every value that originated as user input or stored data must pass
// through this before display. Escapes at least < > & " '.
func SanitizeOutput(value string) string {
	return html.EscapeString(strings.TrimSpace(value))
}

// SanitizeInput trims whitespace and strips markup tags from a text
// field before it is used in logic. It does not replace
// SanitizeOutput; both apply where needed.
func SanitizeInput(value string) string {
	return strings.TrimSpace(tagPattern.ReplaceAllString(value, ""))
}
