package estimator

import (
	"errors"
	"fmt"
)

var (
	errNoSimulator   = errors.New("no RPC simulator configured")
	errEmptyEstimate = errors.New("empty gas estimate")
)

// Kind classifies estimation failures
type Kind int

const (
	// KindMalformedRequest means the descriptor could not be interpreted
	KindMalformedRequest Kind = iota + 1
	// KindUpstreamFailure means the RPC collaborator failed, timed out or
	// answered with something unusable
	KindUpstreamFailure
)

func (k Kind) String() string {
	switch k {
	case KindMalformedRequest:
		return "malformed_request"
	case KindUpstreamFailure:
		return "upstream_failure"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by the estimator
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}
	if e.Msg == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Msg, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MalformedRequest wraps err as a KindMalformedRequest error
func MalformedRequest(msg string, err error) error {
	return &Error{Kind: KindMalformedRequest, Msg: msg, Err: err}
}

// UpstreamFailure wraps err as a KindUpstreamFailure error
func UpstreamFailure(msg string, err error) error {
	return &Error{Kind: KindUpstreamFailure, Msg: msg, Err: err}
}

// KindOf returns the Kind carried by err, or 0 when err is not an *Error
func KindOf(err error) Kind {
	var estErr *Error
	if errors.As(err, &estErr) {
		return estErr.Kind
	}
	return 0
}

func IsMalformedRequest(err error) bool {
	return KindOf(err) == KindMalformedRequest
}

func IsUpstreamFailure(err error) bool {
	return KindOf(err) == KindUpstreamFailure
}
