package service

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,})+$`)

// ValidationError maps field names to human-readable reasons. It satisfies
// error so services can return it through the usual error path.
type ValidationError map[string]string

func (v ValidationError) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// Fields returns the field-to-reason map for the response envelope.
func (v ValidationError) Fields() map[string]string {
	return map[string]string(v)
}

func validEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

func requireField(errs ValidationError, field, value, reason string) {
	if strings.TrimSpace(value) == "" {
		errs[field] = reason
	}
}

// limitField caps length in characters, not bytes, so multi-byte titles
// get the full allowance.
func limitField(errs ValidationError, field, value string, max int, reason string) {
	if utf8.RuneCountInString(strings.TrimSpace(value)) > max {
		errs[field] = reason
	}
}
