// ABOUTME: Typed validation errors returned before any calculation proceeds
// ABOUTME: Callers map these to user-facing messages and non-zero exit codes

package models

import "fmt"

// UnknownModelError indicates a model identifier outside the catalog.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return fmt.Sprintf("unknown model class %q (supported: 7B, 13B, GPT-4)", e.Model)
}

// UnknownHardwareError indicates a hardware identifier outside the catalog.
type UnknownHardwareError struct {
	Hardware string
}

func (e *UnknownHardwareError) Error() string {
	return fmt.Sprintf("unknown hardware type %q (supported: CPU, GPU_4GB through GPU_32GB)", e.Hardware)
}

// InvalidModeError indicates a deployment mode other than local or api.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid deployment mode %q (supported: local, api)", e.Mode)
}

// InvalidParameterError indicates a numeric parameter outside its valid range.
type InvalidParameterError struct {
	Param  string
	Value  int
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Param, e.Value, e.Reason)
}
