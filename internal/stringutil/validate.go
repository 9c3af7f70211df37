// Package stringutil provides string syntax checks shared by formatters.
package stringutil

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Email length limits from RFC 5321 section 4.5.3.1.
const (
	MaxEmailLocalLength = 64
	MaxEmailLength      = 254
	maxDomainLabel      = 63
)

// validate is safe for concurrent use and caches its parsed tags.
var validate = validator.New()

// IsValidEmail checks if s is a bare email address (no display name) of the
// form local@domain.tld within the RFC 5321 length limits. The local part
// may use any RFC 5322 atext character, including UTF-8.
func IsValidEmail(s string) bool {
	if s == "" || len(s) > MaxEmailLength {
		return false
	}
	if err := validate.Var(s, "email"); err != nil {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	local, domain := s[:at], s[at+1:]
	if len(local) > MaxEmailLocalLength {
		return false
	}
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") || strings.Contains(local, "..") {
		return false
	}
	labels := strings.Split(domain, ".")
	for _, label := range labels {
		if label == "" || len(label) > maxDomainLabel {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
	}
	return validTLD(labels[len(labels)-1])
}

// validTLD requires at least two characters and at least one non-digit.
func validTLD(tld string) bool {
	if len([]rune(tld)) < 2 {
		return false
	}
	return strings.IndexFunc(tld, func(r rune) bool { return r < '0' || r > '9' }) >= 0
}
