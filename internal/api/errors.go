package api

import (
	"encoding/json"
	"strings"
)

// GenericSubmitError is shown when the backend gives us nothing usable.
const GenericSubmitError = "We could not submit your answer. Please try again."

// StatusError carries a non-2xx backend response. Body holds the raw
// response text so callers can surface the server's own message.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return FriendlyMessage(e.Body)
}

// FriendlyMessage extracts a human-readable message from an error
// response body. Structured errors put the message in a "detail"
// field; plain text bodies are used as-is.
func FriendlyMessage(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return GenericSubmitError
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && strings.TrimSpace(payload.Detail) != "" {
		return strings.TrimSpace(payload.Detail)
	}
	return body
}
