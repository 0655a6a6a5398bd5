package httperr

import "net/http"

// FieldError reports a validation failure on a single request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError covers bad, missing, or duplicate input. Maps to 400.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func NewValidation(msg string, fields ...FieldError) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Status() int { return http.StatusBadRequest }

// AuthError covers missing, malformed, or rejected credentials. Maps to 401.
type AuthError struct {
	Message string
}

func NewAuth(msg string) *AuthError { return &AuthError{Message: msg} }

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Status() int { return http.StatusUnauthorized }

// NotFoundError covers unknown document ids and unknown routes. Maps to 404.
type NotFoundError struct {
	Message string
}

func NewNotFound(msg string) *NotFoundError { return &NotFoundError{Message: msg} }

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Status() int { return http.StatusNotFound }

// StoreError wraps a persistence failure. Maps to 500; the underlying error
// text goes into the response body but the raw error never propagates further.
type StoreError struct {
	Message string
	Err     error
}

func NewStore(msg string, err error) *StoreError { return &StoreError{Message: msg, Err: err} }

func (e *StoreError) Error() string { return e.Message }

func (e *StoreError) Unwrap() error { return e.Err }

func (e *StoreError) Status() int { return http.StatusInternalServerError }
