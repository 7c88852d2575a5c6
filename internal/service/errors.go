package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies request failures so the HTTP layer can pick a status.
type ErrorKind int

const (
	// KindInternal covers model failures and anything unexpected.
	KindInternal ErrorKind = iota
	// KindInvalidRequest is a malformed body, a missing field or a wrong JSON type.
	KindInvalidRequest
	// KindBatchTooLarge is a batch longer than the configured maximum.
	KindBatchTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidRequest:
		return "InvalidRequest"
	case KindBatchTooLarge:
		return "BatchTooLarge"
	default:
		return "InternalError"
	}
}

// Error is a request-scoped failure. It never outlives the request that
// produced it.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidRequest builds a KindInvalidRequest error.
func InvalidRequest(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidRequest, Message: fmt.Sprintf(format, args...)}
}

// BatchTooLarge reports the requested size against the limit.
func BatchTooLarge(requested, limit int) *Error {
	return &Error{
		Kind:    KindBatchTooLarge,
		Message: fmt.Sprintf("Batch size %d exceeds maximum %d", requested, limit),
	}
}

// InternalError wraps err, keeping its text as the client-facing message.
func InternalError(err error) *Error {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
