package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// same shape check the site's forms use: something@something.tld, no whitespace
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Person names: letters in any script (Nguyễn, 山田), spaces, hyphens, apostrophes, dots.
var fullnameRe = regexp.MustCompile(`^[\p{L}\p{M}\s\-'.]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidFullname(fullname string) bool {
	return strings.TrimSpace(fullname) != "" && fullnameRe.MatchString(fullname)
}

// IsBlank reports whether s is empty after trimming.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// WithinLength counts runes, not bytes.
func WithinLength(s string, max int) bool {
	return utf8.RuneCountInString(s) <= max
}
