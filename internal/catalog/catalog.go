// ABOUTME: Fixed lookup tables for model, hardware, and pricing profiles
// ABOUTME: Initialized once at process start and never mutated

package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

// ModelProfile describes the architecture of one supported model class.
type ModelProfile struct {
	Name          models.ModelClass `json:"name"`
	Parameters    int64             `json:"parameters"`
	Layers        int               `json:"layers"`
	Heads         int               `json:"heads"`
	HeadDim       int               `json:"head_dim"`
	ContextLength int               `json:"context_length"`
	VocabSize     int               `json:"vocab_size"`
	// BytesPerParameter depends on the assumed precision (FP16 = 2).
	BytesPerParameter float64 `json:"bytes_per_parameter"`
}

// HiddenDim is the model width, heads × head dimension.
func (m ModelProfile) HiddenDim() int { return m.Heads * m.HeadDim }

// HardwareProfile describes one local deployment target.
type HardwareProfile struct {
	Name       models.HardwareType `json:"name"`
	VRAMGB     float64             `json:"vram_gb"` // 0 for CPU
	PowerWatts float64             `json:"power_watts"`
	PriceUSD   float64             `json:"price_usd"`
}

// PricingProfile holds hosted-API token pricing for one model class.
// Prices are USD per 1000 tokens, kept as decimals so cost math does
// not accumulate binary float error.
type PricingProfile struct {
	InputUSDPer1K  decimal.Decimal `json:"input_usd_per_1k"`
	OutputUSDPer1K decimal.Decimal `json:"output_usd_per_1k"`
	// ServerTokensPerSecond is the assumed hosted decode rate.
	ServerTokensPerSecond float64 `json:"server_tokens_per_second"`
}

var modelProfiles = map[models.ModelClass]ModelProfile{
	models.Model7B: {
		Name:              models.Model7B,
		Parameters:        7_300_000_000, // Mistral 7B
		Layers:            32,
		Heads:             32,
		HeadDim:           128,
		ContextLength:     8192,
		VocabSize:         32000,
		BytesPerParameter: 2,
	},
	models.Model13B: {
		Name:              models.Model13B,
		Parameters:        13_000_000_000,
		Layers:            40,
		Heads:             40,
		HeadDim:           128,
		ContextLength:     4096,
		VocabSize:         32000,
		BytesPerParameter: 2,
	},
	models.ModelGPT4: {
		Name:              models.ModelGPT4,
		Parameters:        1_760_000_000_000, // published estimate
		Layers:            96,
		Heads:             96,
		HeadDim:           128,
		ContextLength:     8192,
		VocabSize:         100000,
		BytesPerParameter: 2,
	},
}

var hardwareProfiles = map[models.HardwareType]HardwareProfile{
	models.HardwareCPU:     {Name: models.HardwareCPU, VRAMGB: 0, PowerWatts: 65, PriceUSD: 200},
	models.HardwareGPU4GB:  {Name: models.HardwareGPU4GB, VRAMGB: 4, PowerWatts: 75, PriceUSD: 150},
	models.HardwareGPU8GB:  {Name: models.HardwareGPU8GB, VRAMGB: 8, PowerWatts: 220, PriceUSD: 500},
	models.HardwareGPU12GB: {Name: models.HardwareGPU12GB, VRAMGB: 12, PowerWatts: 320, PriceUSD: 700},
	models.HardwareGPU16GB: {Name: models.HardwareGPU16GB, VRAMGB: 16, PowerWatts: 320, PriceUSD: 1200},
	models.HardwareGPU24GB: {Name: models.HardwareGPU24GB, VRAMGB: 24, PowerWatts: 450, PriceUSD: 1600},
	models.HardwareGPU32GB: {Name: models.HardwareGPU32GB, VRAMGB: 32, PowerWatts: 450, PriceUSD: 1600},
}

// peakDecodeRates holds peak decode throughput (tokens/second) per
// model and hardware pairing. Sustained throughput is peak / 1.1 once
// memory stalls are added, so 7B on GPU_16GB sustains ~35 tok/s.
// Each row is strictly increasing across the hardware ranks; the
// latency monotonicity guarantee depends on that.
var peakDecodeRates = map[models.ModelClass]map[models.HardwareType]float64{
	models.Model7B: {
		models.HardwareCPU:     3.3,
		models.HardwareGPU4GB:  8.8,
		models.HardwareGPU8GB:  16.5,
		models.HardwareGPU12GB: 27.5,
		models.HardwareGPU16GB: 38.5,
		models.HardwareGPU24GB: 49.5,
		models.HardwareGPU32GB: 55.0,
	},
	models.Model13B: {
		models.HardwareCPU:     1.1,
		models.HardwareGPU4GB:  3.3,
		models.HardwareGPU8GB:  6.6,
		models.HardwareGPU12GB: 11.0,
		models.HardwareGPU16GB: 16.5,
		models.HardwareGPU24GB: 27.5,
		models.HardwareGPU32GB: 33.0,
	},
	// GPT-4 class does not fit on single-node hardware; the rates exist
	// so local estimates stay defined and strictly ordered.
	models.ModelGPT4: {
		models.HardwareCPU:     0.011,
		models.HardwareGPU4GB:  0.022,
		models.HardwareGPU8GB:  0.033,
		models.HardwareGPU12GB: 0.044,
		models.HardwareGPU16GB: 0.055,
		models.HardwareGPU24GB: 0.066,
		models.HardwareGPU32GB: 0.077,
	},
}

var pricingProfiles = map[models.ModelClass]PricingProfile{
	models.Model7B: {
		InputUSDPer1K:         decimal.RequireFromString("0.0001"),
		OutputUSDPer1K:        decimal.RequireFromString("0.0002"),
		ServerTokensPerSecond: 50,
	},
	models.Model13B: {
		InputUSDPer1K:         decimal.RequireFromString("0.0002"),
		OutputUSDPer1K:        decimal.RequireFromString("0.0004"),
		ServerTokensPerSecond: 50,
	},
	models.ModelGPT4: {
		InputUSDPer1K:         decimal.RequireFromString("0.010"),
		OutputUSDPer1K:        decimal.RequireFromString("0.024"),
		ServerTokensPerSecond: 50,
	},
}

// Model returns the profile for a model class.
func Model(mc models.ModelClass) (ModelProfile, bool) {
	p, ok := modelProfiles[mc]
	return p, ok
}

// Hardware returns the profile for a hardware type.
func Hardware(ht models.HardwareType) (HardwareProfile, bool) {
	p, ok := hardwareProfiles[ht]
	return p, ok
}

// Pricing returns the hosted-API pricing for a model class.
func Pricing(mc models.ModelClass) (PricingProfile, bool) {
	p, ok := pricingProfiles[mc]
	return p, ok
}

// PeakDecodeRate returns the peak local decode rate for a pairing.
func PeakDecodeRate(mc models.ModelClass, ht models.HardwareType) (float64, bool) {
	row, ok := peakDecodeRates[mc]
	if !ok {
		return 0, false
	}
	rate, ok := row[ht]
	return rate, ok
}

// Models returns all model profiles in catalog order.
func Models() []ModelProfile {
	out := make([]ModelProfile, 0, len(modelProfiles))
	for _, mc := range models.AllModelClasses {
		out = append(out, modelProfiles[mc])
	}
	return out
}

// HardwareList returns all hardware profiles ordered by throughput rank.
func HardwareList() []HardwareProfile {
	out := make([]HardwareProfile, 0, len(hardwareProfiles))
	for _, ht := range models.AllHardwareTypes {
		out = append(out, hardwareProfiles[ht])
	}
	return out
}
