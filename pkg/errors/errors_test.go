package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestErrorConstructors(t *testing.T) {
	base := New(CodeValidation, "missing seed")
	if base.Code() != CodeValidation {
		t.Fatalf("expected validation code, got %s", base.Code())
	}
	if base.Message() != "missing seed" {
		t.Fatalf("unexpected message %q", base.Message())
	}
	if base.Unwrap() != nil {
		t.Fatal("expected no cause on New")
	}

	cause := stdErrors.New("connection refused")
	wrapped := Wrap(CodeDependency, cause, "call user service")
	if wrapped.Code() != CodeDependency {
		t.Fatalf("expected dependency code, got %s", wrapped.Code())
	}
	if !stdErrors.Is(wrapped, cause) {
		t.Fatal("wrapped error should match its cause")
	}
}

func TestWrapNilCause(t *testing.T) {
	err := Wrap(CodeInternal, nil, "no cause")
	if err.Unwrap() != nil {
		t.Fatal("expected nil cause")
	}
	if err.Code() != CodeInternal {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestErrorString(t *testing.T) {
	err := New(CodeInternal, "boom")
	if err.Error() != "INTERNAL_ERROR: boom" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAs(t *testing.T) {
	coded := New(CodeValidation, "bad input")
	wrapped := fmt.Errorf("outer: %w", coded)

	if got := As(wrapped); got == nil || got.Code() != CodeValidation {
		t.Fatalf("As failed to recover the coded error: %v", got)
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatal("As should return nil for uncoded errors")
	}
}
