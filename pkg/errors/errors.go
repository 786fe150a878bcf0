// Package errors provides structured error handling for the axbridge library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindDispatch indicates a failure to post a platform notification.
	KindDispatch
	// KindPlatform indicates a native bridge error.
	KindPlatform
	// KindInit indicates an initialization error.
	KindInit
	// KindMisuse indicates an API contract violation by the caller.
	KindMisuse
)

func (k ErrorKind) String() string {
	switch k {
	case KindDispatch:
		return "dispatch"
	case KindPlatform:
		return "platform"
	case KindInit:
		return "init"
	case KindMisuse:
		return "misuse"
	default:
		return "unknown"
	}
}

// BridgeError represents a structured error in the axbridge library.
type BridgeError struct {
	// Op is the operation that failed (e.g., "platform.PostNotification").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Notification is the platform notification name, if applicable.
	Notification string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BridgeError) Error() string {
	if e.Notification != "" {
		return fmt.Sprintf("%s [%s] notification=%s: %v", e.Op, e.Kind, e.Notification, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *BridgeError) Unwrap() error {
	return e.Err
}
