package console

import "io"

// ErrInputClosed is returned by ReadLine once there is no more input,
// errors.Is(err, io.EOF) is also true for it.
var ErrInputClosed = NewErrInterruptedWithErr("input closed", io.EOF)

// InterruptedError is a console read that ended, with why and the underlying error.
type InterruptedError struct {
	DetailedReason string
	OriginalError  error
}

func (e InterruptedError) Unwrap() error {
	return e.OriginalError
}

func (e InterruptedError) Error() string {
	if e.OriginalError != nil {
		return "console interrupted: " + e.DetailedReason + ": " + e.OriginalError.Error()
	}
	return "console interrupted: " + e.DetailedReason
}

// NewErrInterrupted returns an InterruptedError without an underlying error.
func NewErrInterrupted(reason string) InterruptedError {
	return InterruptedError{DetailedReason: reason}
}

// NewErrInterruptedWithErr returns an InterruptedError wrapping err.
func NewErrInterruptedWithErr(reason string, err error) InterruptedError {
	return InterruptedError{DetailedReason: reason, OriginalError: err}
}
