package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseAccess,
				Kind:     KindTypeMismatch,
				Path:     []string{"user", "address", "zip"},
				Expected: "int",
				Actual:   "string",
				Detail:   "cannot convert",
			},
			contains: []string{"[access]", "type_mismatch", "user.address.zip", "expected int", "got string", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseRead,
				Kind:  KindOutOfSpace,
			},
			contains: []string{"[read]", "out_of_space"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseAlloc,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[alloc]", "allocation", "memory full", "caused by", "underlying error"},
		},
		{
			name: "expected only",
			err: &Error{
				Phase:    PhaseConstruct,
				Kind:     KindNilPointer,
				Expected: "datum",
				Detail:   "nil pointer",
			},
			contains: []string{"expected datum - nil pointer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseConvert,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not find cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseAccess,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseAccess, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseMutate, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseAccess, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseAccess, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestClass(t *testing.T) {
	tests := []struct {
		kind Kind
		want Class
	}{
		{KindTypeMismatch, ClassInvalidArgument},
		{KindNilPointer, ClassInvalidArgument},
		{KindOutOfBounds, ClassInvalidArgument},
		{KindNotFound, ClassInvalidArgument},
		{KindInvalidInput, ClassInvalidArgument},
		{KindNotInitialized, ClassInvalidArgument},
		{KindInvalidData, ClassInvalidArgument},
		{KindOverflow, ClassInvalidArgument},
		{KindAllocation, ClassResourceExhausted},
		{KindOutOfSpace, ClassResourceExhausted},
		{KindUnsupported, ClassUnsupported},
	}

	for _, tt := range tests {
		if got := tt.kind.Class(); got != tt.want {
			t.Errorf("%s.Class() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestClassSentinels(t *testing.T) {
	oom := AllocationFailed(PhaseAlloc, 16)
	if !errors.Is(oom, ErrResourceExhausted) {
		t.Error("allocation failure should be resource exhausted")
	}
	if errors.Is(oom, ErrInvalidArgument) {
		t.Error("allocation failure should not be invalid argument")
	}

	wrapped := fmt.Errorf("building record: %w", OutOfBounds(PhaseAccess, nil, 3, 2))
	if !IsInvalidArgument(wrapped) {
		t.Error("IsInvalidArgument should see through fmt wrapping")
	}
	if IsResourceExhausted(wrapped) {
		t.Error("out of bounds is not resource exhausted")
	}

	if !IsUnsupported(Unsupported(PhaseConstruct, "link datum")) {
		t.Error("IsUnsupported should match")
	}
	if IsInvalidArgument(nil) {
		t.Error("nil error should match nothing")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseMutate, KindTypeMismatch).
		Path("user", "name").
		Expected("string").
		Actual("int").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "string", "int").
		Build()

	if err.Phase != PhaseMutate {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseMutate)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.Expected != "string" || err.Actual != "int" {
		t.Errorf("Expected=%v Actual=%v", err.Expected, err.Actual)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected string, got int" {
		t.Errorf("Detail = %v, want 'expected string, got int'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("OutOfBounds", func(t *testing.T) {
		err := OutOfBounds(PhaseAccess, []string{"list"}, 10, 5)
		if err.Kind != KindOutOfBounds {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfBounds)
		}
		if err.Value != 10 {
			t.Errorf("Value = %v, want 10", err.Value)
		}
	})

	t.Run("OutOfSpace", func(t *testing.T) {
		err := OutOfSpace(PhaseWrite, 4, 1)
		if err.Kind != KindOutOfSpace {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOutOfSpace)
		}
		if !strings.Contains(err.Detail, "4 bytes wanted") {
			t.Errorf("Detail = %v, should contain wanted size", err.Detail)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseAccess, nil, "name")
		if err.Kind != KindNotFound || err.Value != "name" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized(PhaseRead, "reader")
		if !strings.Contains(err.Error(), "reader used after release") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseConvert, []string{"val"}, uint64(1<<63), "long")
		if err.Kind != KindOverflow {
			t.Errorf("Kind = %v, want %v", err.Kind, KindOverflow)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("io")
		err := Wrap(PhaseConvert, KindInvalidData, cause, "decode json")
		if !errors.Is(err, cause) || err.Detail != "decode json" {
			t.Errorf("got %+v", err)
		}
	})
}
