// ABOUTME: Closed enumerations for model class, hardware type, and deployment mode
// ABOUTME: Parse constructors reject unknown identifiers with typed errors

package models

// ModelClass identifies one of the supported model families.
type ModelClass string

const (
	Model7B   ModelClass = "7B"
	Model13B  ModelClass = "13B"
	ModelGPT4 ModelClass = "GPT-4"
)

// AllModelClasses lists the supported model classes in catalog order.
var AllModelClasses = []ModelClass{Model7B, Model13B, ModelGPT4}

// ParseModelClass converts a string identifier to a ModelClass.
func ParseModelClass(s string) (ModelClass, error) {
	switch ModelClass(s) {
	case Model7B, Model13B, ModelGPT4:
		return ModelClass(s), nil
	}
	return "", &UnknownModelError{Model: s}
}

func (m ModelClass) String() string { return string(m) }

// HardwareType identifies a local deployment hardware profile.
type HardwareType string

const (
	HardwareCPU     HardwareType = "CPU"
	HardwareGPU4GB  HardwareType = "GPU_4GB"
	HardwareGPU8GB  HardwareType = "GPU_8GB"
	HardwareGPU12GB HardwareType = "GPU_12GB"
	HardwareGPU16GB HardwareType = "GPU_16GB"
	HardwareGPU24GB HardwareType = "GPU_24GB"
	HardwareGPU32GB HardwareType = "GPU_32GB"
)

// AllHardwareTypes lists hardware profiles ordered by throughput rank,
// slowest first. Several calculations rely on this ordering.
var AllHardwareTypes = []HardwareType{
	HardwareCPU,
	HardwareGPU4GB,
	HardwareGPU8GB,
	HardwareGPU12GB,
	HardwareGPU16GB,
	HardwareGPU24GB,
	HardwareGPU32GB,
}

// ParseHardwareType converts a string identifier to a HardwareType.
func ParseHardwareType(s string) (HardwareType, error) {
	switch HardwareType(s) {
	case HardwareCPU, HardwareGPU4GB, HardwareGPU8GB, HardwareGPU12GB,
		HardwareGPU16GB, HardwareGPU24GB, HardwareGPU32GB:
		return HardwareType(s), nil
	}
	return "", &UnknownHardwareError{Hardware: s}
}

func (h HardwareType) String() string { return string(h) }

// IsGPU reports whether the hardware profile has dedicated VRAM.
func (h HardwareType) IsGPU() bool { return h != HardwareCPU }

// DeploymentMode selects between self-hosted and hosted-API deployment.
type DeploymentMode string

const (
	DeployLocal DeploymentMode = "local"
	DeployAPI   DeploymentMode = "api"
)

// ParseDeploymentMode converts a string identifier to a DeploymentMode.
func ParseDeploymentMode(s string) (DeploymentMode, error) {
	switch DeploymentMode(s) {
	case DeployLocal, DeployAPI:
		return DeploymentMode(s), nil
	}
	return "", &InvalidModeError{Mode: s}
}

func (d DeploymentMode) String() string { return string(d) }
