package bravia

import (
	"errors"
	"fmt"
)

// Validation failures raised before any network I/O is performed.
var (
	// ErrServiceNotFound means the device does not advertise the service.
	ErrServiceNotFound = errors.New("bravia: api service not found")
	// ErrMethodNotFound means the service exists but not the method.
	ErrMethodNotFound = errors.New("bravia: api not found")
	// ErrVersionUnsupported means the method exists but not at that version.
	ErrVersionUnsupported = errors.New("bravia: api version not supported")
	// ErrAuthRequired means a protected API was called without a stored PSK.
	ErrAuthRequired = errors.New("bravia: a pre-shared key is required to access this api")
)

// Response classification failures.
var (
	// ErrInvalidResponse means a 2xx body carried neither "result" nor "error".
	ErrInvalidResponse = errors.New("bravia: response is missing both result and error fields")
	// ErrMissingValue means the result array lacked the expected index or field.
	ErrMissingValue = errors.New("bravia: value missing from response")
	// ErrNoServices means the discovery call returned an empty service list.
	ErrNoServices = errors.New("bravia: device advertised no supported services")
)

// APIError is a well-formed rejection reported by the device itself,
// for example "Display Is Turned off". The code values are listed in
// Sony's REST API error code documentation.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("bravia: device error #%d: %s", e.Code, e.Message)
}

// StatusError is an HTTP status outside the success range. The body is
// not inspected in this case.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bravia: request failed with status %d", e.StatusCode)
}
