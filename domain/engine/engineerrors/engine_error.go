package engineerrors

import (
	"github.com/pkg/errors"
)

// These constants are used to identify a specific EngineError.
var (
	// ErrMalformedInput indicates a caller supplied hex string, address
	// string or numeric argument could not be parsed into its target type.
	ErrMalformedInput = newEngineError("ErrMalformedInput")

	// ErrBuilderMisuse indicates a transaction builder was driven out of
	// order: signed twice, mutated after signing, or built before signing.
	ErrBuilderMisuse = newEngineError("ErrBuilderMisuse")

	// ErrEncodingFault indicates the canonical encoder rejected a value.
	// Every value passed to the encoder is encodable by construction, so
	// this always points at a programming defect.
	ErrEncodingFault = newEngineError("ErrEncodingFault")

	// ErrSigningFailure indicates the signature primitive rejected a
	// well formed 32-byte challenge.
	ErrSigningFailure = newEngineError("ErrSigningFailure")

	// ErrInvalidSignature indicates a recomputed challenge does not match
	// the presented signature and public key.
	ErrInvalidSignature = newEngineError("ErrInvalidSignature")
)

// EngineError identifies an error kind of the transaction engine. It may
// wrap an inner error carrying the details.
type EngineError struct {
	message string
	inner   error
}

func (e EngineError) Error() string {
	if e.inner != nil {
		return e.message + ": " + e.inner.Error()
	}
	return e.message
}

// Unwrap returns the inner error
func (e EngineError) Unwrap() error {
	return e.inner
}

// Cause returns the inner error, for github.com/pkg/errors compatibility
func (e EngineError) Cause() error {
	return e.inner
}

// Is reports whether target is an EngineError of the same kind, regardless
// of the wrapped details.
func (e EngineError) Is(target error) bool {
	var other EngineError
	if !errors.As(target, &other) {
		return false
	}
	return e.message == other.message
}

func newEngineError(message string) EngineError {
	return EngineError{message: message, inner: nil}
}

func wrap(kind EngineError, inner error) error {
	return errors.WithStack(EngineError{
		message: kind.message,
		inner:   inner,
	})
}

// NewErrMalformedInput returns an ErrMalformedInput describing the input that
// failed to parse.
func NewErrMalformedInput(format string, args ...interface{}) error {
	return wrap(ErrMalformedInput, errors.Errorf(format, args...))
}

// WrapMalformedInput wraps a parse error as ErrMalformedInput.
func WrapMalformedInput(err error, message string) error {
	return wrap(ErrMalformedInput, errors.Wrap(err, message))
}

// NewErrBuilderMisuse returns an ErrBuilderMisuse describing the violated
// sequencing rule.
func NewErrBuilderMisuse(format string, args ...interface{}) error {
	return wrap(ErrBuilderMisuse, errors.Errorf(format, args...))
}

// WrapEncodingFault wraps an encoder error as ErrEncodingFault.
func WrapEncodingFault(err error, valueDescription string) error {
	return wrap(ErrEncodingFault, errors.Wrapf(err, "failed to encode %s", valueDescription))
}

// WrapSigningFailure wraps a signature primitive error as ErrSigningFailure.
func WrapSigningFailure(err error) error {
	return wrap(ErrSigningFailure, errors.Wrap(err, "cannot sign challenge"))
}

// NewErrInvalidSignature returns an ErrInvalidSignature describing the
// mismatch.
func NewErrInvalidSignature(format string, args ...interface{}) error {
	return wrap(ErrInvalidSignature, errors.Errorf(format, args...))
}
