// Package redact strips secrets from strings before they are logged or
// returned to a client: game tokens, the signing secret, bearer headers,
// file paths and stack traces.
package redact

import "regexp"

// Placeholders written in place of redacted content
const (
	RedactionPlaceholder     = "[REDACTED]"
	RedactedJWTPlaceholder   = "[REDACTED_JWT]"
	RedactedKeyPlaceholder   = "[REDACTED_KEY]"
	RedactedPathPlaceholder  = "[REDACTED_PATH]"
	RedactedStackPlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Applied in order; the JWT rule runs before the bearer and key rules so a
// token is reported as a token.
var rules = []rule{
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), RedactedJWTPlaceholder},
	{regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`), "Bearer " + RedactionPlaceholder},
	{regexp.MustCompile(`(?i)(jwt_secret|secret|token|api[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), RedactedKeyPlaceholder},
	{regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`), RedactedStackPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
