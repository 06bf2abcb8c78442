package respond

import (
	"regexp"
)

var (
	// OpenAI API keys (blurb generator). Avoid matching already masked
	// strings that contain '*'.
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Catalog API keys travel in an X-API-KEY header and occasionally leak
	// into wrapped transport errors.
	catalogKeyPattern = regexp.MustCompile(`(?i)(x-api-key[:=]\s*)[a-zA-Z0-9-]+`)

	// Database passwords embedded in DSNs.
	dbPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)
)

// SanitizeError returns the error message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = catalogKeyPattern.ReplaceAllString(msg, "${1}****")
	msg = dbPasswordPattern.ReplaceAllString(msg, "://$1:****@")

	return msg
}
