package cleaners

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-simplemodel/pkg/model"
)

var (
	strictPolicyOnce sync.Once
	strictPolicy     *bluemonday.Policy
)

func strictSanitizer() *bluemonday.Policy {
	strictPolicyOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// StripHTML removes every tag from strings, keeping their text content, and
// trims the result.
func StripHTML() model.CleanerFunc {
	return Sanitize(strictSanitizer())
}

// Sanitize filters strings through policy and trims the result. A nil policy
// falls back to the strict policy.
func Sanitize(policy *bluemonday.Policy) model.CleanerFunc {
	if policy == nil {
		policy = strictSanitizer()
	}
	return model.CleanerOf(func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return trimmed
		}
		return strings.TrimSpace(policy.Sanitize(trimmed))
	})
}
