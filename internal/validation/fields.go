package validation

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode"
)

var (
	// Letters, spaces, hyphens, apostrophes (names like O'Brien, Mary-Jane)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,50}$`)
)

func ValidName(value string) bool {
	clean := SanitizeInput(value)
	return len(clean) >= 1 && len(clean) <= 128 && namePattern.MatchString(clean)
}

func ValidUsername(value string) bool {
	return usernamePattern.MatchString(SanitizeInput(value))
}

// ValidPassword requires at least 12 characters with uppercase,
// lowercase, digit, and a non-alphanumeric character. The raw value is
// checked: password whitespace is significant.
func ValidPassword(value string) bool {
	if len(value) < 12 {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSpecial
}

// ValidPhone strips every non-digit character and accepts 10 to 20
// remaining digits, so "+1 (555) 867-5309" and "5558675309" both pass.
func ValidPhone(value string) bool {
	var digits int
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 10 && digits <= 20
}

// ValidEmail accepts a plain addr-spec up to 255 characters. Display
// names ("Jo <jo@x>") are rejected by requiring the parsed address to
// round-trip to the input.
func ValidEmail(value string) bool {
	if len(value) > 255 {
		return false
	}
	addr, err := mail.ParseAddress(value)
	return err == nil && addr.Address == value
}

// ValidDate accepts strict YYYY-MM-DD. The parse-and-format round trip
// rejects values like "2024-02-30" that normalize to a different date.
func ValidDate(value string) bool {
	d, err := time.Parse("2006-01-02", value)
	return err == nil && d.Format("2006-01-02") == value
}

// ValidDatetime accepts strict "YYYY-MM-DD HH:MM:SS".
func ValidDatetime(value string) bool {
	d, err := time.Parse("2006-01-02 15:04:05", value)
	return err == nil && d.Format("2006-01-02 15:04:05") == value
}

// Required reports whether a field has a non-blank value.
func Required(value string) bool {
	return strings.TrimSpace(value) != ""
}
