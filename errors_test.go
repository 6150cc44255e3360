package radix

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestStructuredErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantType ErrorType
		wantOp   string
		checkFn  func(error) bool
	}{
		{
			name:     "invalid arg",
			err:      NewInvalidArgError("Sort", "length mismatch", nil),
			wantType: ErrTypeInvalidArg,
			wantOp:   "Sort",
			checkFn:  IsInvalidArgError,
		},
		{
			name:     "verification",
			err:      NewVerificationError("Runner", "output not sorted", nil),
			wantType: ErrTypeVerification,
			wantOp:   "Runner",
			checkFn:  IsVerificationError,
		},
		{
			name:     "io",
			err:      NewIOError("SessionLog.flush", "write failed", fmt.Errorf("disk full")),
			wantType: ErrTypeIO,
			wantOp:   "SessionLog.flush",
			checkFn:  IsIOError,
		},
		{
			name:     "config",
			err:      NewConfigError("LoadConfig", "bad size range", nil),
			wantType: ErrTypeConfig,
			wantOp:   "LoadConfig",
			checkFn:  IsConfigError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var se *SortError
			if !errors.As(tt.err, &se) {
				t.Fatalf("not a *SortError: %v", tt.err)
			}
			if se.Type != tt.wantType {
				t.Errorf("type = %v, want %v", se.Type, tt.wantType)
			}
			if se.Op != tt.wantOp {
				t.Errorf("op = %q, want %q", se.Op, tt.wantOp)
			}
			if !tt.checkFn(tt.err) {
				t.Error("type predicate rejected its own error")
			}
			if !strings.Contains(tt.err.Error(), tt.wantOp) {
				t.Errorf("message %q does not mention op", tt.err.Error())
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := NewIOError("LoadResults", "read failed", cause)
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not found by errors.Is")
	}
	if !strings.Contains(err.Error(), "caused by") {
		t.Errorf("message does not surface cause: %q", err.Error())
	}
}

func TestErrorTypeStrings(t *testing.T) {
	if got := ErrTypeInvalidArg.String(); got != "InvalidArgument" {
		t.Errorf("got %q", got)
	}
	if got := ErrorType(99).String(); got != "Unknown" {
		t.Errorf("got %q", got)
	}
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	plain := errors.New("plain")
	if IsInvalidArgError(plain) || IsIOError(plain) || IsConfigError(plain) || IsVerificationError(plain) {
		t.Error("predicate accepted a non-SortError")
	}
	if IsIOError(nil) {
		t.Error("predicate accepted nil")
	}
}
