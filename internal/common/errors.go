// Package common holds the error and response shapes shared by the HTTP
// boundary.
package common

// AppError carries the HTTP mapping for a domain failure: the machine
// readable code, the user-facing message, the status to respond with, and
// optional structured details. The wrapped error stays server-side.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    any
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError constructs an AppError without details.
func NewAppError(code, message string, status int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// WithDetails attaches structured details for the response payload.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}
