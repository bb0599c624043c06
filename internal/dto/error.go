package dto

import (
	"net/http"
	"time"
)

// ErrorResponse is the uniform error body returned for every failure kind.
type ErrorResponse struct {
	Code      int       `json:"code"`
	Error     string    `json:"error"` // Reason phrase of the status code
	Message   string    `json:"message"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse builds an ErrorResponse for the given status and message.
func NewErrorResponse(status int, message, path string) ErrorResponse {
	return ErrorResponse{
		Code:      status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      path,
		Timestamp: time.Now().UTC(),
	}
}
