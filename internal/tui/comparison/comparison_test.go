// ABOUTME: Tests for the comparison view component
// ABOUTME: Validates scenario table rendering

package comparison

import (
	"strings"
	"testing"

	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

func testComparison() models.ScenarioComparison {
	return models.ScenarioComparison{
		Scenarios: []models.ScenarioResult{
			{
				Name: "Development",
				Request: models.CalculationRequest{
					Model:      models.Model7B,
					Tokens:     1000,
					BatchSize:  1,
					Hardware:   models.HardwareGPU16GB,
					Deployment: models.DeployLocal,
				},
				Result: models.CalculationResult{
					LatencySeconds:    28.57,
					MemoryUsageGB:     18.25,
					CostPerRequestUSD: 0.00139,
					Recommendations: []models.Recommendation{
						{Severity: models.SeverityCritical, Message: "Model does not fit"},
					},
				},
			},
			{
				Name: "Production",
				Request: models.CalculationRequest{
					Model:      models.Model13B,
					Tokens:     1000,
					BatchSize:  1,
					Deployment: models.DeployAPI,
				},
				Result: models.CalculationResult{
					LatencySeconds:     22.0,
					CostPerRequestUSD:  0.0003,
					HardwareCompatible: true,
				},
			},
		},
	}
}

func TestComparisonView(t *testing.T) {
	c := New(testComparison(), 80)
	view := c.View()

	for _, want := range []string{"Scenario Comparison", "Development", "Production", "GPU_16GB", "28.57"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestComparisonViewShowsRecommendations(t *testing.T) {
	c := New(testComparison(), 80)
	view := c.View()

	if !strings.Contains(view, "Model does not fit") {
		t.Error("expected view to contain the critical recommendation")
	}
	if !strings.Contains(view, "critical") {
		t.Error("expected view to label recommendation severity")
	}
}

func TestComparisonViewEmpty(t *testing.T) {
	c := New(models.ScenarioComparison{}, 80)
	view := c.View()

	if !strings.Contains(view, "Scenario Comparison") {
		t.Error("expected view to render the title with no scenarios")
	}
}
