// ABOUTME: Catalog command listing supported models and hardware
// ABOUTME: Prints the fixed profile tables the estimator works from

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/inferlab/inference-cost-analyzer/internal/catalog"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List supported models and hardware profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCatalog(os.Stdout, IsJSONOutput())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(w io.Writer, jsonOut bool) error {
	modelList := catalog.Models()
	hardwareList := catalog.HardwareList()

	pricing := make(map[string]catalog.PricingProfile, len(modelList))
	for _, m := range modelList {
		p, _ := catalog.Pricing(m.Name)
		pricing[string(m.Name)] = p
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"models":   modelList,
			"hardware": hardwareList,
			"pricing":  pricing,
		})
	}

	fmt.Fprintf(w, "Models\n")
	fmt.Fprintf(w, "======\n")
	fmt.Fprintf(w, "%-8s %16s %8s %8s %10s\n", "Name", "Parameters", "Layers", "Heads", "Context")
	for _, m := range modelList {
		fmt.Fprintf(w, "%-8s %16d %8d %8d %10d\n",
			m.Name, m.Parameters, m.Layers, m.Heads, m.ContextLength)
	}

	fmt.Fprintf(w, "\nHardware\n")
	fmt.Fprintf(w, "========\n")
	fmt.Fprintf(w, "%-10s %10s %10s %10s\n", "Name", "VRAM (GB)", "Power (W)", "Price ($)")
	for _, hw := range hardwareList {
		fmt.Fprintf(w, "%-10s %10.0f %10.0f %10.0f\n",
			hw.Name, hw.VRAMGB, hw.PowerWatts, hw.PriceUSD)
	}

	fmt.Fprintf(w, "\nAPI Pricing (USD per 1K tokens)\n")
	fmt.Fprintf(w, "===============================\n")
	fmt.Fprintf(w, "%-8s %10s %10s\n", "Model", "Input", "Output")
	for _, m := range modelList {
		p := pricing[string(m.Name)]
		fmt.Fprintf(w, "%-8s %10s %10s\n", m.Name, p.InputUSDPer1K.String(), p.OutputUSDPer1K.String())
	}

	return nil
}
