package commerce

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a non-2xx upstream response with its message fields decoded
// explicitly. Call sites read UserMessage instead of poking at response
// shapes.
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream responded %d", e.StatusCode)
}

// UserMessage returns the user-displayable error string the backend sent,
// or a generic fallback.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return "Bir hata oluştu. Lütfen daha sonra tekrar deneyin."
}

// IsNotFound reports an upstream 404.
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// errorBody covers the shapes the backend uses for failures: a top-level
// message, or a nested error object with its own message.
type errorBody struct {
	Message *string `json:"message"`
	Detail  *string `json:"detail"`
	Error   *struct {
		Message *string `json:"message"`
	} `json:"error"`
}

func parseAPIError(status int, raw []byte) *APIError {
	out := &APIError{StatusCode: status}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return out
	}
	if body.Message != nil {
		out.Message = *body.Message
	} else if body.Error != nil && body.Error.Message != nil {
		out.Message = *body.Error.Message
	}
	if body.Detail != nil {
		out.Detail = *body.Detail
	}
	return out
}
