// ABOUTME: Estimate wizard as a bubbletea model
// ABOUTME: Uses huh forms to collect the request parameters step by step

package wizard

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/inferlab/inference-cost-analyzer/internal/models"
	"github.com/inferlab/inference-cost-analyzer/internal/tui/styles"
)

// WizardCompleteMsg is sent when the wizard finishes successfully
type WizardCompleteMsg struct {
	Request models.CalculationRequest
}

// WizardCancelledMsg is sent when the wizard is cancelled
type WizardCancelledMsg struct{}

// Wizard collects a calculation request across two form steps
type Wizard struct {
	form  *huh.Form
	step  int
	width int

	// Form field values (strings for huh)
	model      string
	deployment string
	hardware   string
	tokens     string
	batchSize  string
}

// Step names for the progress indicator
var stepNames = []string{"Model & Deployment", "Workload"}

// createTheme returns a huh theme using the shared palette
func createTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Group.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		MarginBottom(1)
	t.Group.Description = lipgloss.NewStyle().
		Foreground(styles.Muted).
		MarginBottom(1)

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	t.Focused.Description = lipgloss.NewStyle().
		Foreground(styles.Muted)
	t.Focused.ErrorMessage = lipgloss.NewStyle().
		Foreground(styles.Danger)
	t.Focused.SelectSelector = lipgloss.NewStyle().
		Foreground(styles.Primary).
		SetString("> ")
	t.Focused.SelectedOption = lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(styles.Primary)
	t.Focused.TextInput.Text = lipgloss.NewStyle().
		Foreground(styles.Text)

	return t
}

// New creates the wizard at step 1 with sensible defaults
func New() *Wizard {
	w := &Wizard{
		step:       1,
		model:      string(models.Model7B),
		deployment: string(models.DeployLocal),
		hardware:   string(models.HardwareGPU16GB),
		tokens:     "1000",
		batchSize:  "1",
	}
	w.form = w.createStep1Form()
	return w
}

func modelOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.AllModelClasses))
	for _, m := range models.AllModelClasses {
		opts = append(opts, huh.NewOption(string(m), string(m)))
	}
	return opts
}

func hardwareOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(models.AllHardwareTypes))
	for _, hw := range models.AllHardwareTypes {
		opts = append(opts, huh.NewOption(string(hw), string(hw)))
	}
	return opts
}

func (w *Wizard) createStep1Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Model").
				Description("Use ↑/↓ to select, Enter to confirm").
				Options(modelOptions()...).
				Value(&w.model),
			huh.NewSelect[string]().
				Title("Deployment").
				Description("Run locally or through a hosted API").
				Options(
					huh.NewOption("Local hardware", string(models.DeployLocal)),
					huh.NewOption("Hosted API", string(models.DeployAPI)),
				).
				Value(&w.deployment),
		).Title("Step 1: Model & Deployment").
			Description("Pick what to run and where"),
	).WithTheme(createTheme())
}

func (w *Wizard) createStep2Form() *huh.Form {
	fields := []huh.Field{}

	if w.deployment == string(models.DeployLocal) {
		fields = append(fields,
			huh.NewSelect[string]().
				Title("Hardware").
				Description("Local deployment target").
				Options(hardwareOptions()...).
				Value(&w.hardware),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Tokens per request").
			Placeholder("e.g., 1000").
			CharLimit(7).
			Value(&w.tokens).
			Validate(validatePositiveInt),
		huh.NewInput().
			Title("Batch size").
			Description("Concurrent requests sharing the hardware").
			Placeholder("e.g., 1").
			CharLimit(4).
			Value(&w.batchSize).
			Validate(validatePositiveInt),
	)

	return huh.NewForm(
		huh.NewGroup(fields...).
			Title("Step 2: Workload").
			Description("Describe the request shape"),
	).WithTheme(createTheme())
}

// validatePositiveInt rejects anything that is not a positive integer
func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

// Init implements tea.Model
func (w *Wizard) Init() tea.Cmd {
	return w.form.Init()
}

// Update implements tea.Model
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		form, cmd := w.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			w.form = f
		}
		return w, cmd

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return w, func() tea.Msg { return WizardCancelledMsg{} }
		}
	}

	form, cmd := w.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.form = f
	}

	if w.form.State == huh.StateCompleted {
		return w.advanceStep()
	}

	return w, cmd
}

func (w *Wizard) advanceStep() (tea.Model, tea.Cmd) {
	switch w.step {
	case 1:
		w.step = 2
		w.form = w.createStep2Form()
		return w, w.form.Init()

	case 2:
		req := w.Request()
		return w, func() tea.Msg {
			return WizardCompleteMsg{Request: req}
		}
	}

	return w, nil
}

// Request assembles the calculation request from the collected values.
// Validation of the identifiers happens in the engine.
func (w *Wizard) Request() models.CalculationRequest {
	tokens, _ := strconv.Atoi(strings.TrimSpace(w.tokens))
	batch, _ := strconv.Atoi(strings.TrimSpace(w.batchSize))

	req := models.CalculationRequest{
		Model:      models.ModelClass(w.model),
		Tokens:     tokens,
		BatchSize:  batch,
		Deployment: models.DeploymentMode(w.deployment),
	}
	if w.deployment == string(models.DeployLocal) {
		req.Hardware = models.HardwareType(w.hardware)
	}
	return req
}

// View implements tea.Model
func (w *Wizard) View() string {
	var sb strings.Builder

	sb.WriteString(w.renderProgress())
	sb.WriteString("\n\n")
	sb.WriteString(w.form.View())

	return sb.String()
}

// renderProgress shows which step is active
func (w *Wizard) renderProgress() string {
	var parts []string
	for i, name := range stepNames {
		label := fmt.Sprintf("%d. %s", i+1, name)
		if i+1 == w.step {
			parts = append(parts, styles.KeyStyle.Render(label))
		} else {
			parts = append(parts, styles.Subtitle.Render(label))
		}
	}
	return strings.Join(parts, styles.Subtitle.Render("  →  "))
}
