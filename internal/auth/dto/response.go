package dto

import "time"

type ErrorBody struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the single error envelope every endpoint returns, so
// clients branch on error.code rather than parsing messages.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

type ValidateResponse struct {
	Valid bool        `json:"valid"`
	User  *UserOutput `json:"user"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
