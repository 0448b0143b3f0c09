// ABOUTME: Non-interactive estimate command
// ABOUTME: Computes a single inference estimate from flags

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/inferlab/inference-cost-analyzer/internal/engine"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
	"github.com/spf13/cobra"
)

var (
	estimateModel        string
	estimateTokens       int
	estimateBatchSize    int
	estimateHardware     string
	estimateDeployment   string
	estimateInputTokens  int
	estimateOutputTokens int
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate latency, memory, and cost for one request",
	Long: `Estimate the latency, memory footprint, and per-request cost of a
single inference request.

Example:
  inference-cost estimate --model 7B --tokens 1000 --hardware GPU_16GB --deployment local
  inference-cost estimate --model GPT-4 --tokens 2000 --deployment api --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := models.CalculationRequest{
			Model:        models.ModelClass(estimateModel),
			Tokens:       estimateTokens,
			BatchSize:    estimateBatchSize,
			Hardware:     models.HardwareType(estimateHardware),
			Deployment:   models.DeploymentMode(estimateDeployment),
			InputTokens:  estimateInputTokens,
			OutputTokens: estimateOutputTokens,
		}
		return runEstimate(os.Stdout, req, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateCmd.Flags().StringVar(&estimateModel, "model", "7B", "Model class (7B, 13B, GPT-4)")
	estimateCmd.Flags().IntVar(&estimateTokens, "tokens", 1000, "Total tokens processed per request")
	estimateCmd.Flags().IntVar(&estimateBatchSize, "batch-size", 1, "Concurrent requests sharing the hardware")
	estimateCmd.Flags().StringVar(&estimateHardware, "hardware", "GPU_16GB", "Hardware profile for local deployment")
	estimateCmd.Flags().StringVar(&estimateDeployment, "deployment", "local", "Deployment mode (local, api)")
	estimateCmd.Flags().IntVar(&estimateInputTokens, "input-tokens", 0, "Explicit input token count for API pricing")
	estimateCmd.Flags().IntVar(&estimateOutputTokens, "output-tokens", 0, "Explicit output token count for API pricing")
}

func runEstimate(w io.Writer, req models.CalculationRequest, jsonOut bool) error {
	calc := engine.NewCalculator()
	result, err := calc.Calculate(req)
	if err != nil {
		return err
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(w, "Inference Estimate\n")
	fmt.Fprintf(w, "==================\n\n")
	if req.Deployment == models.DeployLocal {
		fmt.Fprintf(w, "Model: %s (local on %s)\n", req.Model, req.Hardware)
		fmt.Fprintf(w, "Memory: %.2f GB\n", result.MemoryUsageGB)
	} else {
		fmt.Fprintf(w, "Model: %s (hosted API)\n", req.Model)
	}
	fmt.Fprintf(w, "Latency: %.2f s\n", result.LatencySeconds)
	fmt.Fprintf(w, "Cost per request: $%.6f\n", result.CostPerRequestUSD)
	if req.Deployment == models.DeployLocal {
		compatible := "yes"
		if !result.HardwareCompatible {
			compatible = "no"
		}
		fmt.Fprintf(w, "Hardware compatible: %s\n", compatible)
	}

	if len(result.Recommendations) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(w, "  [%s] %s\n", rec.Severity, rec.Message)
		}
	}

	return nil
}
