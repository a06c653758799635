package rosz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ZettaScaleLabs/ros-z-typesupport/crates/ros-z-go/rosz/cdr"
)

func TestRoszError(t *testing.T) {
	err := NewRoszError(ErrorCodeTypeSupportNotFound, "no such type")

	if err.Code() != ErrorCodeTypeSupportNotFound {
		t.Errorf("Code() = %d, want %d", err.Code(), ErrorCodeTypeSupportNotFound)
	}
	if err.Message() != "no such type" {
		t.Errorf("Message() = %q, want %q", err.Message(), "no such type")
	}
	if want := "no such type (code: -3)"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if err.Unwrap() != nil {
		t.Errorf("Unwrap() = %v, want nil", err.Unwrap())
	}
}

func TestWrapRoszErrorCause(t *testing.T) {
	cause := fmt.Errorf("detections[0].class_name: %w", cdr.ErrNotEnoughData)
	err := WrapRoszError(ErrorCodeDeserializationFailed, cause, "deserialize interfaces::msg::DetectionInfoArray")

	want := "deserialize interfaces::msg::DetectionInfoArray: detections[0].class_name: not enough data (code: -2)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, ErrDeserializationFailed) {
		t.Error("errors.Is should match ErrDeserializationFailed")
	}
	if !errors.Is(err, cdr.ErrNotEnoughData) {
		t.Error("errors.Is should reach the cursor error through Unwrap")
	}
	if errors.Is(err, ErrSerializationFailed) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestRoszErrorWithErrors(t *testing.T) {
	err := NewTypeMismatchError("interfaces::msg::DetectionInfo", nil)

	if !errors.Is(err, NewRoszError(ErrorCodeTypeMismatch, "different message")) {
		t.Error("errors.Is should match RoszError with same code")
	}
	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("errors.Is should match sentinel ErrTypeMismatch")
	}

	var target RoszError
	if !errors.As(err, &target) {
		t.Fatal("errors.As should work for RoszError")
	}
	if target.Code() != ErrorCodeTypeMismatch {
		t.Errorf("Code() after errors.As = %d, want %d", target.Code(), ErrorCodeTypeMismatch)
	}
}

func TestRoszErrorIsNoRecursion(t *testing.T) {
	inner := NewRoszError(ErrorCodeDuplicateTypeSupport, "inner failure")
	doubleWrapped := fmt.Errorf("double: %w", fmt.Errorf("outer: %w", inner))

	if !errors.Is(doubleWrapped, ErrDuplicateTypeSupport) {
		t.Error("errors.Is should find ErrDuplicateTypeSupport through wrapped chain")
	}
	if errors.Is(doubleWrapped, ErrTypeSupportNotFound) {
		t.Error("errors.Is should not match different error code in chain")
	}
}

func TestErrorCodeConstants(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected int32
	}{
		{ErrorCodeSuccess, 0},
		{ErrorCodeSerializationFailed, -1},
		{ErrorCodeDeserializationFailed, -2},
		{ErrorCodeTypeSupportNotFound, -3},
		{ErrorCodeTypeMismatch, -4},
		{ErrorCodeDuplicateTypeSupport, -5},
		{ErrorCodeInvalidTypeSupport, -6},
		{ErrorCodeUnknown, -100},
	}

	for _, tt := range tests {
		if int32(tt.code) != tt.expected {
			t.Errorf("ErrorCode value mismatch: got %d, want %d", tt.code, tt.expected)
		}
	}
}

func TestSafeCallRecoversPanic(t *testing.T) {
	err := safeCall(func() error {
		var m *testPoint
		return m.MarshalCDR(cdr.NewEncoder(0))
	})
	if err == nil {
		t.Fatal("safeCall should turn a panic into an error")
	}
}
