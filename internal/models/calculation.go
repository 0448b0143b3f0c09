// ABOUTME: Request and result value records for the estimation engine
// ABOUTME: JSON-serializable structures shared by CLI, TUI, and HTTP handlers

package models

// CalculationRequest carries the input tuple for one estimate.
// Constructed per call, never mutated afterwards.
type CalculationRequest struct {
	Model      ModelClass     `json:"model"`
	Tokens     int            `json:"tokens"`
	BatchSize  int            `json:"batch_size"`
	Hardware   HardwareType   `json:"hardware,omitempty"`
	Deployment DeploymentMode `json:"deployment"`

	// Optional explicit input/output token split for API pricing.
	// When both are zero the engine applies its default split.
	InputTokens  int `json:"input_tokens,omitempty"`
	OutputTokens int `json:"output_tokens,omitempty"`
}

// CalculationResult is the immutable output of one estimate.
// MemoryUsageGB is zero for API deployment, where the working set
// lives on the provider's hardware.
type CalculationResult struct {
	LatencySeconds     float64          `json:"latency_seconds"`
	MemoryUsageGB      float64          `json:"memory_usage_gb,omitempty"`
	CostPerRequestUSD  float64          `json:"cost_per_request_usd"`
	HardwareCompatible bool             `json:"hardware_compatible"`
	Recommendations    []Recommendation `json:"recommendations"`
}

// Recommendation is a single advisory produced by the engine's rule list.
type Recommendation struct {
	Severity string `json:"severity"` // critical, warning, info
	Message  string `json:"message"`
}

// Severity levels for recommendations.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Messages returns just the advisory strings, preserving rule order.
func (r CalculationResult) Messages() []string {
	msgs := make([]string, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		msgs = append(msgs, rec.Message)
	}
	return msgs
}

// ScenarioResult pairs a named parameter tuple with its computed estimate,
// used by the compare command and the scenarios endpoint.
type ScenarioResult struct {
	Name    string             `json:"name"`
	Request CalculationRequest `json:"request"`
	Result  CalculationResult  `json:"result"`
}

// ScenarioComparison is the full output of a preset scenario sweep.
type ScenarioComparison struct {
	Scenarios []ScenarioResult `json:"scenarios"`
}
