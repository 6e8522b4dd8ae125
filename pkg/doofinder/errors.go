package doofinder

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"
)

// FallbackErrorMessage is the APIError message used when the error body
// cannot be serialized.
const FallbackErrorMessage = `{"error": {"code" : "Something went wrong"}}`

// APIError is returned when the API answers with a status outside [200, 400).
type APIError struct {
	// Message is the response body serialized as JSON, or FallbackErrorMessage.
	Message string `json:"message"     yaml:"message"`
	// StatusCode is the HTTP status of the response.
	StatusCode int `json:"status_code" yaml:"status_code"`
	// Response is the response exactly as the transport returned it.
	Response *Response `json:"-" yaml:"-"`
}

// NewAPIError builds an APIError from a failed response.
func NewAPIError(response *Response) *APIError {
	message := FallbackErrorMessage

	if validUTF8(response.Body) {
		encoded, err := json.Marshal(response.Body)
		if err == nil {
			message = string(encoded)
		}
	}

	return &APIError{
		Message:    message,
		StatusCode: response.StatusCode,
		Response:   response,
	}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("doofinder: API error (status %d): %s", e.StatusCode, e.Message)
}

// ErrorCode returns error.code from an error body shaped like
// {"error": {"code": "not_found"}}, or "" when absent.
func (e *APIError) ErrorCode() string {
	if e.Response == nil {
		return ""
	}

	body, ok := e.Response.Body.(map[string]any)
	if !ok {
		return ""
	}

	detail, ok := body["error"].(map[string]any)
	if !ok {
		return ""
	}

	code, _ := detail["code"].(string)

	return code
}

// Static errors for err113 compliance.
var (
	ErrEmptyURL          = errors.New("request URL is required")
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
	ErrEmptyResponse     = errors.New("transport returned no response")
	ErrModelDecode       = errors.New("failed to decode response model")
	ErrUnexpectedBody    = errors.New("unexpected response body")
	ErrTokenGeneration   = errors.New("failed to generate JWT")
	ErrConfigRequired    = errors.New("config is required")
	ErrTokenRequired     = errors.New("API token is required")
	ErrNoZoneInToken     = errors.New("host not set and token carries no zone prefix")
	ErrHashIDRequired    = errors.New("search engine hashid is required")
	ErrIndexNameRequired = errors.New("index name is required")
	ErrItemIDRequired    = errors.New("item id is required")
	ErrSessionIDRequired = errors.New("stats session id is required")
	ErrQueryRequired     = errors.New("search query is required")
)

// StatusCode returns the HTTP status carried by an APIError, or 0.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden checks if the error is a forbidden error.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}

// IsBadRequest checks if the error is a bad request error.
func IsBadRequest(err error) bool {
	return StatusCode(err) == http.StatusBadRequest
}

// IsServerError checks if the error came from a 5xx response.
func IsServerError(err error) bool {
	return StatusCode(err) >= http.StatusInternalServerError
}

// validUTF8 reports whether every string in a decoded body is valid UTF-8.
// json.Marshal would silently replace invalid bytes with U+FFFD.
func validUTF8(value any) bool {
	switch typed := value.(type) {
	case string:
		return utf8.ValidString(typed)
	case map[string]any:
		for key, item := range typed {
			if !utf8.ValidString(key) || !validUTF8(item) {
				return false
			}
		}
	case []any:
		for _, item := range typed {
			if !validUTF8(item) {
				return false
			}
		}
	}

	return true
}
