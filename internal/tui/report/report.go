// ABOUTME: Report view showing a single estimate result
// ABOUTME: Renders latency, memory against VRAM, cost, and recommendations

package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/inferlab/inference-cost-analyzer/internal/catalog"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/styles"
)

const memoryBarWidth = 30

// Report displays one calculation result
type Report struct {
	request models.CalculationRequest
	result  models.CalculationResult
	width   int

	// recommendationsOnly hides the metric block and shows advisories
	recommendationsOnly bool
}

// New creates a report view
func New(request models.CalculationRequest, result models.CalculationResult, width int) *Report {
	return &Report{
		request: request,
		result:  result,
		width:   width,
	}
}

// NewRecommendations creates a report focused on the advisory list
func NewRecommendations(request models.CalculationRequest, result models.CalculationResult, width int) *Report {
	r := New(request, result, width)
	r.recommendationsOnly = true
	return r
}

// SetWidth adjusts the rendered width
func (r *Report) SetWidth(width int) {
	r.width = width
}

// View renders the report
func (r *Report) View() string {
	var sb strings.Builder

	title := "Estimate"
	if r.recommendationsOnly {
		title = "Recommendations"
	}
	sb.WriteString(styles.Title.Render(title))
	sb.WriteString("\n\n")

	if r.request.Deployment == models.DeployLocal {
		sb.WriteString(fmt.Sprintf("Model: %s on %s\n", r.request.Model, r.request.Hardware))
	} else {
		sb.WriteString(fmt.Sprintf("Model: %s via hosted API\n", r.request.Model))
	}
	sb.WriteString(fmt.Sprintf("Tokens: %d  Batch: %d\n\n", r.request.Tokens, r.request.BatchSize))

	if !r.recommendationsOnly {
		sb.WriteString(fmt.Sprintf("Latency: %s\n",
			styles.ValueStyle.Render(fmt.Sprintf("%.2f s", r.result.LatencySeconds))))
		sb.WriteString(fmt.Sprintf("Cost:    %s\n",
			styles.ValueStyle.Render(fmt.Sprintf("$%.6f / request", r.result.CostPerRequestUSD))))

		if r.request.Deployment == models.DeployLocal {
			sb.WriteString(r.renderMemory())
		}
	}

	switch {
	case len(r.result.Recommendations) > 0:
		if !r.recommendationsOnly {
			sb.WriteString("\n")
			sb.WriteString(styles.Subtitle.Render("Recommendations"))
			sb.WriteString("\n")
		}
		for _, rec := range r.result.Recommendations {
			style := styles.SeverityStyle(rec.Severity)
			sb.WriteString(fmt.Sprintf("  %s %s\n", style.Render("["+rec.Severity+"]"), rec.Message))
		}
	case r.recommendationsOnly:
		sb.WriteString(styles.StatusOK.Render("No advisories for this configuration"))
		sb.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(r.width).Render(sb.String())
}

// renderMemory shows memory demand against the hardware's VRAM
func (r *Report) renderMemory() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Memory:  %s\n",
		styles.ValueStyle.Render(fmt.Sprintf("%.2f GB", r.result.MemoryUsageGB))))

	hw, ok := catalog.Hardware(r.request.Hardware)
	if ok && hw.VRAMGB > 0 {
		percent := r.result.MemoryUsageGB / hw.VRAMGB * 100
		sb.WriteString(fmt.Sprintf("  %s %.0f%% of %.0f GB VRAM\n",
			styles.UsageBar(percent, memoryBarWidth), percent, hw.VRAMGB))
	}

	status := styles.StatusOK.Render("fits on hardware")
	if !r.result.HardwareCompatible {
		status = styles.StatusCritical.Render("does not fit on hardware")
	}
	sb.WriteString("  " + status + "\n")

	return sb.String()
}
