// ABOUTME: Action selection menu shown when the TUI starts
// ABOUTME: Lets the user choose between a single estimate and the preset comparison

package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/styles"
)

// Action represents the selected menu action
type Action int

const (
	ActionEstimate Action = iota
	ActionCompare
	ActionRecommendations
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionEstimate:
		return "estimate"
	case ActionCompare:
		return "compare"
	case ActionRecommendations:
		return "recommendations"
	case ActionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ActionSelectedMsg is sent when the user confirms a menu entry
type ActionSelectedMsg struct {
	Action Action
}

type option struct {
	label  string
	detail string
	value  Action
}

// Menu is the action selection model
type Menu struct {
	options []option
	cursor  int
}

// New creates the startup menu
func New() *Menu {
	return &Menu{
		options: []option{
			{label: "Estimate a request", detail: "Latency, memory, and cost for one configuration", value: ActionEstimate},
			{label: "Compare scenarios", detail: "Local 7B vs API 13B vs API GPT-4", value: ActionCompare},
			{label: "Recommendations", detail: "Advisories for one configuration", value: ActionRecommendations},
			{label: "Quit", detail: "", value: ActionQuit},
		},
	}
}

// Update implements tea.Model
func (m *Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "q":
		return m, func() tea.Msg { return ActionSelectedMsg{Action: ActionQuit} }
	case "enter":
		selected := m.options[m.cursor].value
		return m, func() tea.Msg { return ActionSelectedMsg{Action: selected} }
	}

	return m, nil
}

// Init implements tea.Model
func (m *Menu) Init() tea.Cmd {
	return nil
}

// View implements tea.Model
func (m *Menu) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Inference Cost Analyzer"))
	sb.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		labelStyle := styles.ValueStyle
		if i == m.cursor {
			cursor = styles.KeyStyle.Render("> ")
			labelStyle = styles.KeyStyle
		}
		sb.WriteString(cursor + labelStyle.Render(opt.label))
		if opt.detail != "" {
			sb.WriteString(styles.Subtitle.Render("  " + opt.detail))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(styles.Help.Render("↑/↓ navigate · enter select · q quit"))

	return sb.String()
}

// Selected returns the action under the cursor.
func (m *Menu) Selected() Action {
	return m.options[m.cursor].value
}
