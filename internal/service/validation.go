package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/arundev/portfolio-api/internal/dto"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)

// ValidationError reports per-field constraint violations for a contact
// submission. A submission that fails validation has no side effects.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid contact submission: %s", strings.Join(names, ", "))
}

// ValidateContact enforces the contact-form shape constraints: name 2-100
// characters, valid email syntax, subject 5-200, message 10-1000.
func ValidateContact(req dto.ContactRequest) error {
	fields := make(map[string]string)

	if n := utf8.RuneCountInString(req.Name); n < 2 || n > 100 {
		fields["name"] = "must be between 2 and 100 characters"
	}
	if !validEmail(req.Email) {
		fields["email"] = "must be a valid email address"
	}
	if n := utf8.RuneCountInString(req.Subject); n < 5 || n > 200 {
		fields["subject"] = "must be between 5 and 200 characters"
	}
	if n := utf8.RuneCountInString(req.Message); n < 10 || n > 1000 {
		fields["message"] = "must be between 10 and 1000 characters"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return false
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !isDomainValid(domain) {
		return false
	}
	ascii, err := idna.Lookup.ToASCII(domain)
	return err == nil && ascii != ""
}

func isDomainValid(domain string) bool {
	parts := strings.Split(domain, ".")
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}
