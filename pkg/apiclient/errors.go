package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrSessionExpired is returned when the server rejects the stored token on a
// protected endpoint. The credential source has already been invalidated by
// the time callers see this error.
var ErrSessionExpired = errors.New("session expired")

// APIError is the typed error returned for any non-2xx API response
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: request failed with status %d", e.Status)
}

func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			apiErr.Message = payload.Error
		} else {
			apiErr.Message = payload.Message
		}
	}
	return apiErr
}
