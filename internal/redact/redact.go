// Package redact scrubs sensitive information from strings before they are
// logged. Error messages in this application can carry API keys, database
// connection strings, or fragments of raw model output; redacting at the
// logging boundary keeps them out of log aggregation.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

// Precompiled redaction patterns.
var (
	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// API keys and bearer tokens appearing in error text.
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|bearer)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := dbConnRegex.ReplaceAllString(input, RedactedCredentialPlaceholder+"@")
	result = apiKeyRegex.ReplaceAllString(result, "$1$2"+RedactedKeyPlaceholder)
	return result
}

// Error redacts sensitive information from an error's message.
// Returns an empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
