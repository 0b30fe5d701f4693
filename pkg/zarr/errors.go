package zarr

import "fmt"

// ErrCodeConnection indicates a storage connection error.
const ErrCodeConnection = "CONNECTION_ERROR"

// StorageError represents an error from the underlying object store.
type StorageError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Operation string `json:"operation"`
	Cause     error  `json:"-"`
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}
	return e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewConnectionError creates a StorageError for connection failures.
func NewConnectionError(operation string, err error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "Storage connection failed", Operation: operation, Cause: err}
}
