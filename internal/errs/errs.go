// Package errs defines the error taxonomy shared by the client core.
// Callers match with errors.As; none of these are fatal to the process.
package errs

import "fmt"

// NetworkError wraps a failed catalog call. Surfaced to the caller for
// user-facing messaging; never retried here.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("catalog request %s: %v", e.URL, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// DeserializationError means a stored value could not be decoded. Read
// paths treat it the same as "absent" and log the anomaly.
type DeserializationError struct {
	Key string
	Err error
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("decode stored value %q: %v", e.Key, e.Err)
}
func (e *DeserializationError) Unwrap() error { return e.Err }

// ValidationError rejects caller-supplied input. No state changes when
// one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason) }

// PersistenceError wraps a failed durable write.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("persist %q: %v", e.Key, e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }
