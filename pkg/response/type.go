package response

import "physrisk-api/pkg/errors"

// Resp is the JSON envelope for error responses and simple acknowledgements.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}

// ErrorMapping maps domain errors to the HTTPError sent to the client.
type ErrorMapping map[error]*errors.HTTPError
