// ABOUTME: Estimation engine for LLM inference latency, memory, and cost
// ABOUTME: Pure stateless calculations over the fixed catalog tables

package engine

import (
	"github.com/shopspring/decimal"

	"github.com/inferlab/inference-cost-analyzer/internal/catalog"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

// Estimation constants. Centralized so tests can assert against them
// instead of magic numbers scattered through the formulas.
const (
	// BytesPerGB converts bytes to decimal gigabytes.
	BytesPerGB = 1e9
	// KVBytesPerElement is the FP16 width of each cached key/value element.
	KVBytesPerElement = 2
	// ActivationExpansion sizes intermediate activations at 10x the
	// hidden width per token.
	ActivationExpansion = 10
	// SafetyMargin pads the working set by 20% for allocator overhead
	// and fragmentation.
	SafetyMargin = 1.20
	// MemoryStallOverhead adds 10% to compute time for memory-bound stalls.
	MemoryStallOverhead = 0.10
	// APINetworkLatencySeconds is the fixed round-trip cost of a hosted call.
	APINetworkLatencySeconds = 2.0
	// HardwareLifetimeHours amortizes hardware price over 3 years at
	// 8 hours of use per day.
	HardwareLifetimeHours = 3 * 365 * 8
	// ElectricityUSDPerKWh is the assumed average electricity rate.
	ElectricityUSDPerKWh = 0.12
)

// defaultInputSplit is the assumed input share of the token count when
// the caller does not supply an explicit input/output split.
var defaultInputSplit = decimal.RequireFromString("0.5")

// Calculator computes inference estimates. It holds no state; concurrent
// calls need no coordination.
type Calculator struct{}

// NewCalculator creates a new calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate validates the request and produces a complete estimate.
// Validation failures return a typed error and no partial result.
func (c *Calculator) Calculate(req models.CalculationRequest) (models.CalculationResult, error) {
	if err := c.validate(req); err != nil {
		return models.CalculationResult{}, err
	}

	model, _ := catalog.Model(req.Model)

	var memoryGB float64
	var hardware catalog.HardwareProfile
	compatible := true
	if req.Deployment == models.DeployLocal {
		hardware, _ = catalog.Hardware(req.Hardware)
		memoryGB = c.memoryUsage(model, req.Tokens, req.BatchSize)
		// Compatibility uses the per-request working set, not the
		// model's base footprint: tokens and batch size matter.
		if req.Hardware.IsGPU() {
			compatible = hardware.VRAMGB >= memoryGB
		}
	}

	latency := c.latency(req, model)
	cost := c.cost(req, hardware, latency)

	recs := recommendations(ruleContext{
		req:        req,
		model:      model,
		hardware:   hardware,
		memoryGB:   memoryGB,
		compatible: compatible,
	})

	return models.CalculationResult{
		LatencySeconds:     latency,
		MemoryUsageGB:      memoryGB,
		CostPerRequestUSD:  cost,
		HardwareCompatible: compatible,
		Recommendations:    recs,
	}, nil
}

// validate rejects malformed requests before any computation.
func (c *Calculator) validate(req models.CalculationRequest) error {
	if _, err := models.ParseDeploymentMode(string(req.Deployment)); err != nil {
		return err
	}
	if _, ok := catalog.Model(req.Model); !ok {
		return &models.UnknownModelError{Model: string(req.Model)}
	}
	if req.Deployment == models.DeployLocal {
		if _, ok := catalog.Hardware(req.Hardware); !ok {
			return &models.UnknownHardwareError{Hardware: string(req.Hardware)}
		}
	}
	if req.Tokens <= 0 {
		return &models.InvalidParameterError{Param: "tokens", Value: req.Tokens, Reason: "must be a positive integer"}
	}
	if req.BatchSize <= 0 {
		return &models.InvalidParameterError{Param: "batch_size", Value: req.BatchSize, Reason: "must be a positive integer"}
	}
	if req.InputTokens < 0 {
		return &models.InvalidParameterError{Param: "input_tokens", Value: req.InputTokens, Reason: "must not be negative"}
	}
	if req.OutputTokens < 0 {
		return &models.InvalidParameterError{Param: "output_tokens", Value: req.OutputTokens, Reason: "must not be negative"}
	}
	if req.InputTokens > 0 || req.OutputTokens > 0 {
		if req.InputTokens+req.OutputTokens != req.Tokens {
			return &models.InvalidParameterError{
				Param:  "input_tokens",
				Value:  req.InputTokens + req.OutputTokens,
				Reason: "explicit input/output split must sum to tokens",
			}
		}
	}
	return nil
}

// memoryUsage computes the local working set in decimal GB.
//
//	model weights: parameters x bytes per parameter
//	KV cache:      2 x layers x heads x head_dim x tokens x batch x 2 bytes
//	activations:   hidden x bytes x expansion x tokens x batch
//
// The sum carries a 20% safety margin. Tokens are deliberately not
// clamped to the context window so the estimate stays strictly
// monotonic; oversized requests get a recommendation instead.
func (c *Calculator) memoryUsage(model catalog.ModelProfile, tokens, batch int) float64 {
	modelMemGB := float64(model.Parameters) * model.BytesPerParameter / BytesPerGB

	kvElements := 2 * float64(model.Layers) * float64(model.Heads) * float64(model.HeadDim)
	kvCacheGB := kvElements * float64(tokens) * float64(batch) * KVBytesPerElement / BytesPerGB

	activationGB := float64(model.HiddenDim()) * model.BytesPerParameter *
		ActivationExpansion * float64(tokens) * float64(batch) / BytesPerGB

	return (modelMemGB + kvCacheGB + activationGB) * SafetyMargin
}

// latency estimates end-to-end seconds for the request.
func (c *Calculator) latency(req models.CalculationRequest, model catalog.ModelProfile) float64 {
	if req.Deployment == models.DeployAPI {
		pricing, _ := catalog.Pricing(req.Model)
		return APINetworkLatencySeconds + float64(req.Tokens)/pricing.ServerTokensPerSecond
	}

	peak, _ := catalog.PeakDecodeRate(req.Model, req.Hardware)
	computeTime := float64(req.Tokens) / peak
	return computeTime * (1 + MemoryStallOverhead)
}

// cost estimates USD per request.
func (c *Calculator) cost(req models.CalculationRequest, hardware catalog.HardwareProfile, latencySeconds float64) float64 {
	if req.Deployment == models.DeployAPI {
		return c.apiCost(req)
	}

	amortizedPerSecond := hardware.PriceUSD / (HardwareLifetimeHours * 3600)
	electricityPerSecond := hardware.PowerWatts / 1000 * ElectricityUSDPerKWh / 3600
	return (amortizedPerSecond + electricityPerSecond) * latencySeconds
}

// apiCost prices a hosted request from the per-1K token rates. The math
// runs in decimal and converts to float exactly once at the end.
func (c *Calculator) apiCost(req models.CalculationRequest) float64 {
	pricing, _ := catalog.Pricing(req.Model)

	var inputTokens, outputTokens decimal.Decimal
	if req.InputTokens > 0 || req.OutputTokens > 0 {
		inputTokens = decimal.NewFromInt(int64(req.InputTokens))
		outputTokens = decimal.NewFromInt(int64(req.OutputTokens))
	} else {
		total := decimal.NewFromInt(int64(req.Tokens))
		inputTokens = total.Mul(defaultInputSplit)
		outputTokens = total.Sub(inputTokens)
	}

	thousand := decimal.NewFromInt(1000)
	inputCost := inputTokens.Div(thousand).Mul(pricing.InputUSDPer1K)
	outputCost := outputTokens.Div(thousand).Mul(pricing.OutputUSDPer1K)
	return inputCost.Add(outputCost).InexactFloat64()
}
