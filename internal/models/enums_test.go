// ABOUTME: Tests for enum parsing and typed errors
// ABOUTME: Verifies round-trips and error messages naming offending values

package models

import (
	"errors"
	"strings"
	"testing"
)

func TestParseModelClass(t *testing.T) {
	for _, valid := range []string{"7B", "13B", "GPT-4"} {
		mc, err := ParseModelClass(valid)
		if err != nil {
			t.Errorf("ParseModelClass(%q): %v", valid, err)
		}
		if mc.String() != valid {
			t.Errorf("Round trip failed for %q: got %q", valid, mc)
		}
	}

	_, err := ParseModelClass("7b")
	var modelErr *UnknownModelError
	if !errors.As(err, &modelErr) {
		t.Fatalf("Expected UnknownModelError, got %v", err)
	}
	if modelErr.Model != "7b" {
		t.Errorf("Error should carry the offending value, got %q", modelErr.Model)
	}
}

func TestParseHardwareType(t *testing.T) {
	if len(AllHardwareTypes) != 7 {
		t.Fatalf("Expected 7 hardware types, got %d", len(AllHardwareTypes))
	}
	for _, ht := range AllHardwareTypes {
		parsed, err := ParseHardwareType(string(ht))
		if err != nil || parsed != ht {
			t.Errorf("ParseHardwareType(%q) = %q, %v", ht, parsed, err)
		}
	}

	_, err := ParseHardwareType("GPU_64GB")
	var hwErr *UnknownHardwareError
	if !errors.As(err, &hwErr) {
		t.Fatalf("Expected UnknownHardwareError, got %v", err)
	}
}

func TestParseDeploymentMode(t *testing.T) {
	for _, valid := range []string{"local", "api"} {
		if _, err := ParseDeploymentMode(valid); err != nil {
			t.Errorf("ParseDeploymentMode(%q): %v", valid, err)
		}
	}

	_, err := ParseDeploymentMode("hybrid")
	var modeErr *InvalidModeError
	if !errors.As(err, &modeErr) {
		t.Fatalf("Expected InvalidModeError, got %v", err)
	}
}

func TestIsGPU(t *testing.T) {
	if HardwareCPU.IsGPU() {
		t.Error("CPU is not a GPU")
	}
	if !HardwareGPU4GB.IsGPU() {
		t.Error("GPU_4GB should report IsGPU")
	}
}

func TestErrorMessagesNameTheField(t *testing.T) {
	tests := []struct {
		err      error
		fragment string
	}{
		{&UnknownModelError{Model: "70B"}, "70B"},
		{&UnknownHardwareError{Hardware: "TPU"}, "TPU"},
		{&InvalidModeError{Mode: "edge"}, "edge"},
		{&InvalidParameterError{Param: "tokens", Value: -1, Reason: "must be a positive integer"}, "tokens"},
	}
	for _, tc := range tests {
		if msg := tc.err.Error(); !strings.Contains(msg, tc.fragment) {
			t.Errorf("Error %T message %q missing %q", tc.err, msg, tc.fragment)
		}
	}
}
