// ABOUTME: Root bubbletea model for the TUI application
// ABOUTME: Manages screen state and routes keyboard input to child components

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/inferlab/inference-cost-analyzer/internal/engine"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/comparison"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/menu"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/report"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/styles"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/wizard"
)

// Screen represents the current TUI screen
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenWizard
	ScreenReport
	ScreenComparison
)

// Layout constants
const (
	minTerminalWidth = 80
	panelPadding     = 4 // horizontal padding from panel borders
)

// estimateDoneMsg is sent when the engine finishes a single estimate
type estimateDoneMsg struct {
	request models.CalculationRequest
	result  models.CalculationResult
	err     error
}

// compareDoneMsg is sent when the preset sweep completes
type compareDoneMsg struct {
	result models.ScenarioComparison
	err    error
}

// App is the root model for the TUI
type App struct {
	calc          *engine.Calculator
	screen        Screen
	width         int
	height        int
	err           error
	compareTokens int
	recsOnly      bool

	// Child models
	menu         *menu.Menu
	wizardScreen *wizard.Wizard
	reportView   *report.Report
	compView     *comparison.Comparison
}

// New creates a new TUI application
func New(compareTokens int) *App {
	return &App{
		calc:          engine.NewCalculator(),
		screen:        ScreenMenu,
		compareTokens: compareTokens,
		menu:          menu.New(),
	}
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.reportView != nil {
			a.reportView.SetWidth(a.contentWidth())
		}
		if a.compView != nil {
			a.compView.SetWidth(a.contentWidth())
		}
		if a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		switch a.screen {
		case ScreenMenu:
			return a.updateMenu(msg)
		case ScreenWizard:
			return a.updateWizard(msg)
		case ScreenReport, ScreenComparison:
			return a.updateResultScreen(msg)
		}

	case menu.ActionSelectedMsg:
		return a.handleAction(msg.Action)

	case wizard.WizardCompleteMsg:
		a.wizardScreen = nil
		return a, a.runEstimate(msg.Request)

	case wizard.WizardCancelledMsg:
		a.screen = ScreenMenu
		a.wizardScreen = nil
		return a, nil

	case estimateDoneMsg:
		if msg.err != nil {
			a.err = msg.err
			a.screen = ScreenMenu
			return a, nil
		}
		a.err = nil
		if a.recsOnly {
			a.reportView = report.NewRecommendations(msg.request, msg.result, a.contentWidth())
		} else {
			a.reportView = report.New(msg.request, msg.result, a.contentWidth())
		}
		a.screen = ScreenReport
		return a, nil

	case compareDoneMsg:
		if msg.err != nil {
			a.err = msg.err
			a.screen = ScreenMenu
			return a, nil
		}
		a.err = nil
		a.compView = comparison.New(msg.result, a.contentWidth())
		a.screen = ScreenComparison
		return a, nil

	default:
		// huh form internals need to see every message while active
		if a.screen == ScreenWizard && a.wizardScreen != nil {
			return a.updateWizard(msg)
		}
	}

	return a, nil
}

func (a *App) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.menu == nil {
		return a, nil
	}
	model, cmd := a.menu.Update(msg)
	a.menu = model.(*menu.Menu)
	return a, cmd
}

func (a *App) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.wizardScreen == nil {
		return a, nil
	}
	model, cmd := a.wizardScreen.Update(msg)
	a.wizardScreen = model.(*wizard.Wizard)
	return a, cmd
}

func (a *App) updateResultScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "w":
		return a, a.startWizard()
	case "b":
		a.screen = ScreenMenu
		a.reportView = nil
		a.compView = nil
		a.err = nil
		return a, nil
	}
	return a, nil
}

func (a *App) handleAction(action menu.Action) (tea.Model, tea.Cmd) {
	switch action {
	case menu.ActionEstimate:
		a.recsOnly = false
		return a, a.startWizard()
	case menu.ActionCompare:
		return a, a.runCompare()
	case menu.ActionRecommendations:
		a.recsOnly = true
		return a, a.startWizard()
	case menu.ActionQuit:
		return a, tea.Quit
	}
	return a, nil
}

// startWizard transitions to the wizard screen
func (a *App) startWizard() tea.Cmd {
	a.wizardScreen = wizard.New()
	a.screen = ScreenWizard
	return a.wizardScreen.Init()
}

// runEstimate computes a single estimate off the update loop
func (a *App) runEstimate(req models.CalculationRequest) tea.Cmd {
	return func() tea.Msg {
		result, err := a.calc.Calculate(req)
		return estimateDoneMsg{request: req, result: result, err: err}
	}
}

// runCompare runs the preset sweep off the update loop
func (a *App) runCompare() tea.Cmd {
	return func() tea.Msg {
		result, err := a.calc.CompareScenarios(context.Background(), engine.Presets(a.compareTokens))
		return compareDoneMsg{result: result, err: err}
	}
}

// View implements tea.Model
func (a *App) View() string {
	var content string

	switch a.screen {
	case ScreenMenu:
		content = a.viewMenu()
	case ScreenWizard:
		content = a.viewWizard()
	case ScreenReport:
		content = a.viewReport()
	case ScreenComparison:
		content = a.viewComparison()
	default:
		content = a.viewMenu()
	}

	return a.wrapWithFrame(content)
}

func (a *App) viewMenu() string {
	var sb strings.Builder
	if a.err != nil {
		sb.WriteString(styles.StatusCritical.Render("Error: " + a.err.Error()))
		sb.WriteString("\n\n")
	}
	if a.menu != nil {
		sb.WriteString(a.menu.View())
	}
	return sb.String()
}

func (a *App) viewWizard() string {
	if a.wizardScreen != nil {
		return a.wizardScreen.View()
	}
	return ""
}

func (a *App) viewReport() string {
	if a.reportView == nil {
		return styles.Panel.Render("Computing...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.reportView.View())
}

func (a *App) viewComparison() string {
	if a.compView == nil {
		return styles.Panel.Render("Computing...")
	}
	return styles.ActivePanel.Width(a.contentWidth()).Render(a.compView.View())
}

// contentWidth calculates the width available for panel content
func (a *App) contentWidth() int {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}
	return width - panelPadding
}

// renderHeader creates the header bar with app branding
func (a *App) renderHeader() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	titleStyle := lipgloss.NewStyle().Foreground(styles.Primary).Bold(true)

	leftText := " " + titleStyle.Render("Inference Cost Analyzer")

	leftWidth := lipgloss.Width(leftText)
	fillWidth := width - 4 - leftWidth
	if fillWidth < 0 {
		fillWidth = 0
	}

	header := "╭─" + leftText + strings.Repeat("─", fillWidth) + "─╮"
	return borderStyle.Render(header)
}

// renderFooter creates the footer with keyboard shortcuts
func (a *App) renderFooter() string {
	width := a.width
	if width < minTerminalWidth {
		width = minTerminalWidth
	}

	borderStyle := lipgloss.NewStyle().Foreground(styles.Muted)
	keyStyle := lipgloss.NewStyle().Foreground(styles.Primary)
	labelStyle := lipgloss.NewStyle().Foreground(styles.Muted)

	var shortcuts []string
	switch a.screen {
	case ScreenMenu:
		shortcuts = []string{"↑↓ Navigate", "Enter Select", "q Quit"}
	case ScreenWizard:
		shortcuts = []string{"↑↓ Select", "Enter Confirm", "Esc Cancel"}
	case ScreenReport, ScreenComparison:
		shortcuts = []string{"w New estimate", "b Back", "q Quit"}
	}

	var styledShortcuts []string
	for _, s := range shortcuts {
		parts := strings.SplitN(s, " ", 2)
		if len(parts) == 2 {
			styledShortcuts = append(styledShortcuts, keyStyle.Render(parts[0])+" "+labelStyle.Render(parts[1]))
		} else {
			styledShortcuts = append(styledShortcuts, s)
		}
	}

	leftText := " " + strings.Join(styledShortcuts, "  ")
	leftPlainText := " " + strings.Join(shortcuts, "  ")

	fillWidth := width - 4 - lipgloss.Width(leftPlainText)
	if fillWidth < 0 {
		fillWidth = 0
	}

	footer := "╰─" + leftText + strings.Repeat("─", fillWidth) + "─╯"
	return borderStyle.Render(footer)
}

// wrapWithFrame wraps content with header and footer
func (a *App) wrapWithFrame(content string) string {
	var sb strings.Builder

	sb.WriteString(a.renderHeader())
	sb.WriteString("\n")
	sb.WriteString(content)
	sb.WriteString("\n")
	sb.WriteString(a.renderFooter())

	return sb.String()
}

// Run starts the TUI
func Run(compareTokens int) error {
	app := New(compareTokens)

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
