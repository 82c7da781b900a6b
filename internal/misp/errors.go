package misp

import (
	"errors"
	"fmt"
)

// ErrKind classifies a failed remote call.
type ErrKind string

const (
	// ErrKindRemote covers transport failures and non-2xx responses.
	ErrKindRemote ErrKind = "remote"
	// ErrKindTimeout covers calls that exceeded their deadline.
	ErrKindTimeout ErrKind = "timeout"
)

// CallError is the single error type returned by every remote call.
type CallError struct {
	Kind   ErrKind
	Status int // HTTP status from MISP, 0 if the call never completed
	Err    error
}

func (e *CallError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("MISP call failed (%s, status %d): %v", e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("MISP call failed (%s): %v", e.Kind, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// IsTimeout reports whether err represents a remote call that timed out.
func IsTimeout(err error) bool {
	var ce *CallError
	return errors.As(err, &ce) && ce.Kind == ErrKindTimeout
}
