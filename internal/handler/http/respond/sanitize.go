package respond

import (
	"regexp"
)

var (
	// More specific patterns first.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	// Does not match already-masked strings.
	openaiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// Credentials embedded in URLs, e.g. upstream endpoints.
	urlPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

	// API keys passed as query parameters (MyMemory "key", generic "api_key").
	queryKeyPattern = regexp.MustCompile(`([?&](?:key|api_key|apikey|token)=)[^&\s"]+`)
)

// SanitizeError returns the error message with secrets masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = queryKeyPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
