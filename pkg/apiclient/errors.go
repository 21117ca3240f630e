package apiclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// StatusError is a non-2xx response. Message is safe to show to the dashboard user.
type StatusError struct {
	Status        int
	Message       string
	ServerMessage string
	Body          []byte
}

func (e *StatusError) Error() string {
	if e.ServerMessage != "" {
		return fmt.Sprintf("apiclient: status %d: %s", e.Status, e.ServerMessage)
	}
	return fmt.Sprintf("apiclient: status %d", e.Status)
}

func newStatusError(status int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	return &StatusError{
		Status:        status,
		Message:       UserMessage(status, payload.Message),
		ServerMessage: payload.Message,
		Body:          body,
	}
}

// UserMessage maps a status to what the dashboard shows.
func UserMessage(status int, serverMessage string) string {
	switch {
	case status == http.StatusUnauthorized:
		return "Your session has expired. Please sign in again."
	case status == http.StatusForbidden:
		return "You do not have permission to perform this action."
	case status == http.StatusNotFound:
		if serverMessage != "" {
			return serverMessage
		}
		return "The requested resource was not found."
	case status >= http.StatusInternalServerError:
		return "The server encountered an error. Please try again later."
	case serverMessage != "":
		return serverMessage
	}
	return fmt.Sprintf("Request failed with status %d.", status)
}
