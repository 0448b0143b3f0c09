// ABOUTME: Preset deployment scenarios and the concurrent comparison sweep
// ABOUTME: Each scenario is an independent calculation, run in parallel

package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/inferlab/inference-cost-analyzer/internal/models"
)

// Scenario names one parameter tuple for a comparison run.
type Scenario struct {
	Name    string
	Request models.CalculationRequest
}

// Presets returns the standard three-way comparison at the given token
// count: self-hosted 7B for development, hosted 13B for production
// volume, hosted GPT-4 where quality dominates.
func Presets(tokens int) []Scenario {
	return []Scenario{
		{
			Name: "Development (7B local)",
			Request: models.CalculationRequest{
				Model:      models.Model7B,
				Tokens:     tokens,
				BatchSize:  1,
				Hardware:   models.HardwareGPU16GB,
				Deployment: models.DeployLocal,
			},
		},
		{
			Name: "Production (13B API)",
			Request: models.CalculationRequest{
				Model:      models.Model13B,
				Tokens:     tokens,
				BatchSize:  1,
				Deployment: models.DeployAPI,
			},
		},
		{
			Name: "Enterprise (GPT-4 API)",
			Request: models.CalculationRequest{
				Model:      models.ModelGPT4,
				Tokens:     tokens,
				BatchSize:  1,
				Deployment: models.DeployAPI,
			},
		},
	}
}

// CompareScenarios calculates every scenario concurrently. The calls
// share no state, so the only coordination is collecting results in
// scenario order. A validation failure in any scenario fails the sweep.
func (c *Calculator) CompareScenarios(ctx context.Context, scenarios []Scenario) (models.ScenarioComparison, error) {
	results := make([]models.ScenarioResult, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := c.Calculate(sc.Request)
			if err != nil {
				return err
			}
			results[i] = models.ScenarioResult{Name: sc.Name, Request: sc.Request, Result: res}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.ScenarioComparison{}, err
	}

	return models.ScenarioComparison{Scenarios: results}, nil
}
