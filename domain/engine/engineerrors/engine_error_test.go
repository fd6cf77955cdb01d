package engineerrors

import (
	"testing"

	"github.com/pkg/errors"
)

func TestEngineErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		kind     error
		notKinds []error
		message  string
	}{
		{
			name:     "malformed input",
			err:      NewErrMalformedInput("bad hex %q", "zz"),
			kind:     ErrMalformedInput,
			notKinds: []error{ErrBuilderMisuse, ErrEncodingFault, ErrSigningFailure, ErrInvalidSignature},
			message:  `ErrMalformedInput: bad hex "zz"`,
		},
		{
			name:     "builder misuse",
			err:      NewErrBuilderMisuse("Sign called twice"),
			kind:     ErrBuilderMisuse,
			notKinds: []error{ErrMalformedInput, ErrInvalidSignature},
			message:  "ErrBuilderMisuse: Sign called twice",
		},
		{
			name:     "encoding fault",
			err:      WrapEncodingFault(errors.New("unsupported type"), "chan int"),
			kind:     ErrEncodingFault,
			notKinds: []error{ErrSigningFailure},
			message:  "ErrEncodingFault: failed to encode chan int: unsupported type",
		},
		{
			name:     "signing failure",
			err:      WrapSigningFailure(errors.New("bad nonce")),
			kind:     ErrSigningFailure,
			notKinds: []error{ErrEncodingFault},
			message:  "ErrSigningFailure: cannot sign challenge: bad nonce",
		},
		{
			name:     "invalid signature",
			err:      NewErrInvalidSignature("challenge mismatch"),
			kind:     ErrInvalidSignature,
			notKinds: []error{ErrMalformedInput},
			message:  "ErrInvalidSignature: challenge mismatch",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if !errors.Is(test.err, test.kind) {
				t.Fatalf("expected %+v to be %s", test.err, test.kind)
			}
			for _, notKind := range test.notKinds {
				if errors.Is(test.err, notKind) {
					t.Fatalf("expected %+v not to be %s", test.err, notKind)
				}
			}
			if test.err.Error() != test.message {
				t.Fatalf("expected message %q, got %q", test.message, test.err.Error())
			}
		})
	}
}

func TestEngineErrorSurvivesWrapping(t *testing.T) {
	inner := WrapMalformedInput(errors.New("odd length hex string"), "failed to parse public key")
	outer := errors.Wrap(inner, "GetAccountComponentAddress")

	if !errors.Is(outer, ErrMalformedInput) {
		t.Fatalf("TestEngineErrorSurvivesWrapping: expected wrapped error to match ErrMalformedInput")
	}

	engineError := EngineError{}
	if !errors.As(outer, &engineError) {
		t.Fatalf("TestEngineErrorSurvivesWrapping: outer should contain an EngineError")
	}
	if engineError.message != "ErrMalformedInput" {
		t.Fatalf("TestEngineErrorSurvivesWrapping: expected message ErrMalformedInput, got %s", engineError.message)
	}
	if engineError.Unwrap() == nil {
		t.Fatalf("TestEngineErrorSurvivesWrapping: expected inner error to be kept")
	}
}
