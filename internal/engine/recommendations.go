// ABOUTME: Deterministic advisory rules evaluated against a computed estimate
// ABOUTME: Ordered predicate-to-message list, independent of the calculations

package engine

import (
	"fmt"

	"github.com/inferlab/inference-cost-analyzer/internal/catalog"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

// tightMarginFraction flags compatible GPU configurations whose working
// set is within 10% of the VRAM capacity.
const tightMarginFraction = 0.90

// largeBatchThreshold flags local batch sizes that inflate the KV cache.
const largeBatchThreshold = 4

// ruleContext is everything a rule may inspect: the request plus the
// metrics already computed for it.
type ruleContext struct {
	req        models.CalculationRequest
	model      catalog.ModelProfile
	hardware   catalog.HardwareProfile
	memoryGB   float64
	compatible bool
}

func (rc ruleContext) local() bool { return rc.req.Deployment == models.DeployLocal }
func (rc ruleContext) api() bool   { return rc.req.Deployment == models.DeployAPI }

// rule pairs a predicate with a message builder. Rules run in
// declaration order and each appends at most one recommendation.
type rule struct {
	applies func(ruleContext) bool
	build   func(ruleContext) models.Recommendation
}

var rules = []rule{
	// Incompatible GPU: name the smallest profile that would fit, or
	// steer to API when nothing does.
	{
		applies: func(rc ruleContext) bool {
			return rc.local() && rc.req.Hardware.IsGPU() && !rc.compatible
		},
		build: func(rc ruleContext) models.Recommendation {
			msg := fmt.Sprintf("Insufficient VRAM: the request needs %.1f GB but %s has %.0f GB",
				rc.memoryGB, rc.hardware.Name, rc.hardware.VRAMGB)
			if fit, ok := smallestFittingGPU(rc.memoryGB); ok {
				msg += fmt.Sprintf("; use hardware with at least %.0f GB (e.g. %s) or switch to API deployment", fit.VRAMGB, fit.Name)
			} else {
				msg += "; no catalog GPU can hold this working set, switch to API deployment"
			}
			return models.Recommendation{Severity: models.SeverityCritical, Message: msg}
		},
	},
	// Compatible but within 10% of capacity.
	{
		applies: func(rc ruleContext) bool {
			return rc.local() && rc.req.Hardware.IsGPU() && rc.compatible &&
				rc.memoryGB >= tightMarginFraction*rc.hardware.VRAMGB
		},
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityWarning,
				Message: fmt.Sprintf("Tight memory margin: %.1f GB of %.0f GB VRAM in use; consider INT8 or INT4 quantization",
					rc.memoryGB, rc.hardware.VRAMGB),
			}
		},
	},
	{
		applies: func(rc ruleContext) bool {
			return rc.local() && rc.req.Hardware == models.HardwareCPU
		},
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityWarning,
				Message:  "CPU inference is slow; recommended only for testing",
			}
		},
	},
	{
		applies: func(rc ruleContext) bool {
			return rc.req.Tokens > rc.model.ContextLength
		},
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityWarning,
				Message: fmt.Sprintf("%d tokens exceed the %s context window of %d; chunk the input",
					rc.req.Tokens, rc.model.Name, rc.model.ContextLength),
			}
		},
	},
	{
		applies: func(rc ruleContext) bool {
			return rc.local() && rc.req.BatchSize > largeBatchThreshold
		},
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityWarning,
				Message: fmt.Sprintf("Batch size %d multiplies the KV cache; reduce it if memory is constrained",
					rc.req.BatchSize),
			}
		},
	},
	{
		applies: func(rc ruleContext) bool { return rc.api() },
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityInfo,
				Message:  "API cost scales linearly with tokens; trim prompts and cap output length to control spend",
			}
		},
	},
	{
		applies: func(rc ruleContext) bool { return rc.api() },
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityInfo,
				Message:  "Hosted endpoints enforce rate limits; apply client-side throttling and backoff",
			}
		},
	},
	{
		applies: func(rc ruleContext) bool { return rc.api() && rc.req.BatchSize > 1 },
		build: func(rc ruleContext) models.Recommendation {
			return models.Recommendation{
				Severity: models.SeverityInfo,
				Message:  "Hosted APIs bill per request; batching does not reduce cost",
			}
		},
	},
}

// recommendations evaluates the rule list in order. Pure function of the
// context, fully reproducible.
func recommendations(rc ruleContext) []models.Recommendation {
	var recs []models.Recommendation
	for _, r := range rules {
		if r.applies(rc) {
			recs = append(recs, r.build(rc))
		}
	}
	return recs
}

// smallestFittingGPU finds the lowest-VRAM catalog GPU that can hold the
// given working set.
func smallestFittingGPU(memoryGB float64) (catalog.HardwareProfile, bool) {
	for _, hw := range catalog.HardwareList() {
		if hw.Name.IsGPU() && hw.VRAMGB >= memoryGB {
			return hw, true
		}
	}
	return catalog.HardwareProfile{}, false
}
