package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned for any response with an unexpected status code
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports whether the server rejected the request input (4xx)
func IsClientError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
}

func readErrorResponse(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: resp.Status}

	var payload map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if message, ok := payload["error"]; ok && message != "" {
			apiErr.Message = message
		}
	}
	return apiErr
}
