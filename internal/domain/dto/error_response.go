package dto

import "time"

// ErrorResponse is the standard error payload of the API.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid date"`
	ErrorDetails string    `json:"error,omitempty" example:"parsing time \"2019-13-01\": month out of range"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error makes ErrorResponse usable as an error value.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse; err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
