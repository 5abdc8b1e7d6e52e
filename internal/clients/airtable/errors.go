package airtable

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("record not found")

// APIError is a non-200 answer. Airtable encodes the error either as a bare
// string ("NOT_FOUND") or as an object with type and message.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Type)
	}
	return fmt.Sprintf("request failed with status %d: %s: %s", e.StatusCode, e.Type, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil || len(envelope.Error) == 0 {
		apiErr.Type = http.StatusText(statusCode)
		apiErr.Message = string(body)
		return apiErr
	}

	var errType string
	if err := json.Unmarshal(envelope.Error, &errType); err == nil {
		apiErr.Type = errType
		return apiErr
	}

	var detailed struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(envelope.Error, &detailed); err == nil {
		apiErr.Type = detailed.Type
		apiErr.Message = detailed.Message
	}
	return apiErr
}
