package errors

import (
	"fmt"
)

var ErrBind = fmt.Errorf("bind error")
var ErrDuplicateOperation = fmt.Errorf("duplicate operation")
var ErrUnknownOperation = fmt.Errorf("unknown operation")
var ErrFault = fmt.Errorf("soap fault")
var ErrRequest = fmt.Errorf("request error")
var ErrBadResponse = fmt.Errorf("bad response")
var ErrReleaseFailed = fmt.Errorf("release failed")

type sdError struct {
	msg    string
	target error
}

func (e sdError) Error() string        { return e.msg }
func (e sdError) Is(target error) bool { return target == e.target }

// NewBindError reports that a service descriptor could not be fetched,
// parsed or bound during registry construction.
func NewBindError(msg string) error {
	return &sdError{
		msg:    msg,
		target: ErrBind,
	}
}

// NewDuplicateOperationError reports that two descriptors resolved to the
// same canonical operation name.
func NewDuplicateOperationError(msg string) error {
	return &sdError{
		msg:    msg,
		target: ErrDuplicateOperation,
	}
}

// NewUnknownOperationError reports a lookup of an operation name that was
// never bound. Operation names are fixed by the client facade, so hitting
// this is a programming error rather than a runtime condition.
func NewUnknownOperationError(msg string) error {
	return &sdError{
		msg:    msg,
		target: ErrUnknownOperation,
	}
}

// NewFaultError wraps a fault returned by the remote service.
func NewFaultError(code, reason string) error {
	return &sdError{
		msg:    fmt.Sprintf("soap fault %s: %s", code, reason),
		target: ErrFault,
	}
}

func NewReleaseError(msg string) error {
	return &sdError{
		msg:    msg,
		target: ErrReleaseFailed,
	}
}
