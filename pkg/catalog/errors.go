package catalog

import (
	"errors"
	"fmt"
)

// DefaultFailureMessage is reported when the upstream envelope signals
// failure without a message.
const DefaultFailureMessage = "获取产品数据失败"

var ErrProductNotFound = errors.New("product not found")

// TransportError is returned when the upstream answers with a non-2xx status.
type TransportError struct {
	StatusCode int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("http error, status: %d", e.StatusCode)
}

// APIError is returned when the envelope is well formed but reports failure.
// Its message is surfaced verbatim to the store.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// UnknownError wraps network and decoding failures.
type UnknownError struct {
	Cause error
}

func (e *UnknownError) Error() string {
	return e.Cause.Error()
}

func (e *UnknownError) Unwrap() error {
	return e.Cause
}
