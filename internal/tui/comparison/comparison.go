// ABOUTME: Comparison view showing the preset scenario sweep results
// ABOUTME: Renders a table of metrics plus per-scenario recommendations

package comparison

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/styles"
)

// Comparison displays scenario comparison results
type Comparison struct {
	result models.ScenarioComparison
	table  table.Model
	width  int
}

// New creates a comparison view
func New(result models.ScenarioComparison, width int) *Comparison {
	columns := []table.Column{
		{Title: "Scenario", Width: 24},
		{Title: "Model", Width: 8},
		{Title: "Where", Width: 10},
		{Title: "Latency (s)", Width: 12},
		{Title: "Memory (GB)", Width: 12},
		{Title: "Cost ($)", Width: 12},
	}

	rows := make([]table.Row, 0, len(result.Scenarios))
	for _, s := range result.Scenarios {
		where := "api"
		if s.Request.Deployment == models.DeployLocal {
			where = string(s.Request.Hardware)
		}
		rows = append(rows, table.Row{
			s.Name,
			string(s.Request.Model),
			where,
			fmt.Sprintf("%.2f", s.Result.LatencySeconds),
			fmt.Sprintf("%.2f", s.Result.MemoryUsageGB),
			fmt.Sprintf("%.6f", s.Result.CostPerRequestUSD),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		Foreground(styles.Primary).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(styles.Muted).
		BorderBottom(true)
	ts.Selected = lipgloss.NewStyle()
	t.SetStyles(ts)

	return &Comparison{
		result: result,
		table:  t,
		width:  width,
	}
}

// SetWidth adjusts the rendered width
func (c *Comparison) SetWidth(width int) {
	c.width = width
}

// View renders the comparison
func (c *Comparison) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Scenario Comparison"))
	sb.WriteString("\n\n")
	sb.WriteString(c.table.View())
	sb.WriteString("\n")

	for _, s := range c.result.Scenarios {
		if len(s.Result.Recommendations) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render(s.Name))
		sb.WriteString("\n")
		for _, rec := range s.Result.Recommendations {
			style := styles.SeverityStyle(rec.Severity)
			sb.WriteString(fmt.Sprintf("  %s %s\n", style.Render("["+rec.Severity+"]"), rec.Message))
		}
	}

	return lipgloss.NewStyle().Width(c.width).Render(sb.String())
}
