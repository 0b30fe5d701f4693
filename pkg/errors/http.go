package errors

import "net/http"

// HTTPError represents an HTTP error with status code and message.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// NewHTTPError returns a new HTTPError with the given code, message, and status code.
// If statusCode is 0, it defaults to http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a new unauthorized HTTP error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewWrongCredentialsHTTPError returns the 401 sent for a failed token issuance.
// The message never identifies whether email or password was wrong.
func NewWrongCredentialsHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageWrongCredentials,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewBadRequestHTTPError returns the generic 400 for malformed or rejected requests.
// The underlying cause is logged server-side only.
func NewBadRequestHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusBadRequest,
		Message:    MessageBadRequest,
		StatusCode: http.StatusBadRequest,
	}
}

// NewNoResultsHTTPError returns the 404 sent when the backend call succeeded
// but none of the expected result collections came back.
func NewNoResultsHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusNotFound,
		Message:    MessageNoResults,
		StatusCode: http.StatusNotFound,
	}
}

// NewServerConfigHTTPError returns the 500 for a missing server-side secret.
// The missing value itself is never echoed to the client.
func NewServerConfigHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusInternalServerError,
		Message:    MessageServerConfig,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewUpstreamHTTPError returns the 502 for a failed engine image or tile fetch.
func NewUpstreamHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusBadGateway,
		Message:    MessageUpstream,
		StatusCode: http.StatusBadGateway,
	}
}

// NewNotFoundHTTPError returns a 404 with the given message.
func NewNotFoundHTTPError(message string) *HTTPError {
	return &HTTPError{
		Code:       http.StatusNotFound,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

// Error returns the error message.
func (e *HTTPError) Error() string {
	return e.Message
}
