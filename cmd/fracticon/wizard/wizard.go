package wizard

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/components"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/screens"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

// Phase represents the current phase/screen of the wizard.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseLook
	PhaseSummary
	PhaseSaveConfig
	PhaseProgress
	PhaseComplete
	PhaseError
)

// Wizard is the main orchestrator for the wizard interface.
type Wizard struct {
	job *types.JobConfig

	// Current phase
	phase Phase

	// Screen instances
	setupScreen      *screens.SetupScreen
	lookScreen       *screens.LookScreen
	summaryScreen    *screens.SummaryScreen
	progressScreen   *screens.ProgressScreen
	completionScreen *screens.CompletionScreen
	errorScreen      *screens.ErrorScreen

	// Save config form
	saveConfigForm *huh.Form
	configPath     string

	// Window size
	width  int
	height int

	// Final state
	cancelled bool
	finished  bool
	err       error
}

// NewWizard creates a new wizard with default or loaded settings.
func NewWizard(job *types.JobConfig) *Wizard {
	if job == nil {
		job = DefaultJob()
	}

	w := &Wizard{
		job:   job,
		phase: PhaseSetup,
	}

	// Initialize the setup screen
	w.setupScreen = screens.NewSetupScreen(w.job)

	return w
}

// Init implements tea.Model.
func (w *Wizard) Init() tea.Cmd {
	return w.setupScreen.Init()
}

// Update implements tea.Model.
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window size for all phases
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		w.width = wsm.Width
		w.height = wsm.Height
	}

	switch w.phase {
	case PhaseSetup:
		return w.updateSetup(msg)
	case PhaseLook:
		return w.updateLook(msg)
	case PhaseSummary:
		return w.updateSummary(msg)
	case PhaseSaveConfig:
		return w.updateSaveConfig(msg)
	case PhaseProgress:
		return w.updateProgress(msg)
	case PhaseComplete:
		return w.updateComplete(msg)
	case PhaseError:
		return w.updateError(msg)
	}

	return w, nil
}

// View implements tea.Model.
func (w *Wizard) View() string {
	switch w.phase {
	case PhaseSetup:
		return w.setupScreen.View()
	case PhaseLook:
		return w.lookScreen.View()
	case PhaseSummary:
		return w.summaryScreen.View()
	case PhaseSaveConfig:
		return w.viewSaveConfig()
	case PhaseProgress:
		return w.progressScreen.View()
	case PhaseComplete:
		return w.completionScreen.View()
	case PhaseError:
		return w.errorScreen.View()
	}

	return ""
}

// updateSetup handles updates in the setup phase.
func (w *Wizard) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.setupScreen.Update(msg)
	if ss, ok := model.(*screens.SetupScreen); ok {
		w.setupScreen = ss
	}

	if w.setupScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.setupScreen.Done() {
		return w.transitionToLook()
	}

	return w, cmd
}

// transitionToLook moves to the look screen.
func (w *Wizard) transitionToLook() (tea.Model, tea.Cmd) {
	w.phase = PhaseLook
	w.lookScreen = screens.NewLookScreen(w.job)
	return w, w.lookScreen.Init()
}

// updateLook handles updates in the look phase.
func (w *Wizard) updateLook(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.lookScreen.Update(msg)
	if ls, ok := model.(*screens.LookScreen); ok {
		w.lookScreen = ls
	}

	if w.lookScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.lookScreen.Done() {
		return w.transitionToSummary()
	}

	return w, cmd
}

// transitionToSummary moves to the summary screen.
func (w *Wizard) transitionToSummary() (tea.Model, tea.Cmd) {
	w.phase = PhaseSummary
	w.summaryScreen = screens.NewSummaryScreen(w.job)
	return w, w.summaryScreen.Init()
}

// updateSummary handles updates in the summary phase.
func (w *Wizard) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.summaryScreen.Update(msg)
	if ss, ok := model.(*screens.SummaryScreen); ok {
		w.summaryScreen = ss
	}

	if w.summaryScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	if w.summaryScreen.Done() {
		switch w.summaryScreen.Action() {
		case screens.SummaryActionBack:
			// Go back to the setup screen with the current values
			w.phase = PhaseSetup
			w.setupScreen = screens.NewSetupScreen(w.job)
			return w, w.setupScreen.Init()

		case screens.SummaryActionGenerate:
			return w.startGeneration()

		case screens.SummaryActionSaveConfig:
			return w.transitionToSaveConfig()

		case screens.SummaryActionCancel:
			w.cancelled = true
			return w, tea.Quit
		}
	}

	return w, cmd
}

// transitionToSaveConfig shows the save config dialog.
func (w *Wizard) transitionToSaveConfig() (tea.Model, tea.Cmd) {
	w.phase = PhaseSaveConfig
	w.configPath = "fracticon.yaml"

	w.saveConfigForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("config_path").
				Title("Save configuration to").
				Description("Enter the path for the YAML config file").
				Value(&w.configPath).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path is required")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	return w, w.saveConfigForm.Init()
}

// updateSaveConfig handles updates in the save config phase.
func (w *Wizard) updateSaveConfig(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// Go back to summary
			return w.transitionToSummary()
		case "ctrl+c":
			w.cancelled = true
			return w, tea.Quit
		}
	}

	form, cmd := w.saveConfigForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		w.saveConfigForm = f
	}

	if w.saveConfigForm.State == huh.StateCompleted {
		// Save the config
		if err := SaveToYAML(w.job, w.configPath); err != nil {
			w.err = err
			w.phase = PhaseError
			w.errorScreen = screens.NewErrorScreen(err)
			return w, nil
		}

		// Go back to summary
		return w.transitionToSummary()
	}

	return w, cmd
}

// viewSaveConfig renders the save config dialog.
func (w *Wizard) viewSaveConfig() string {
	title := components.TitleStyle.Render("Save Configuration")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		w.saveConfigForm.View(),
		"",
		"Enter: Save | Esc: Back",
	)

	return content
}

// startGeneration renders the avatar and writes it to the output file.
func (w *Wizard) startGeneration() (tea.Model, tea.Cmd) {
	w.phase = PhaseProgress
	w.progressScreen = screens.NewProgressScreen(w.job.Output)

	job := *w.job
	render := func() tea.Msg {
		startTime := time.Now()

		opts, err := ToOptions(&job)
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		var out []byte
		if job.Format == "svg" {
			out, err = fracticon.GenerateSVG(job.Input, opts)
		} else {
			out, err = fracticon.Generate(job.Input, opts)
		}
		if err != nil {
			return screens.ErrorMsg{Error: err}
		}

		if err := os.WriteFile(job.Output, out, 0o644); err != nil {
			return screens.ErrorMsg{Error: fmt.Errorf("writing %s: %w", job.Output, err)}
		}

		return screens.CompletionMsg{
			Input:      job.Input,
			OutputPath: job.Output,
			Bytes:      int64(len(out)),
			Duration:   time.Since(startTime),
		}
	}

	return w, tea.Batch(w.progressScreen.Init(), render)
}

// updateProgress handles updates in the progress phase.
func (w *Wizard) updateProgress(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case screens.CompletionMsg:
		w.phase = PhaseComplete
		w.completionScreen = screens.NewCompletionScreen(msg)
		return w, nil

	case screens.ErrorMsg:
		w.phase = PhaseError
		w.err = msg.Error
		w.errorScreen = screens.NewErrorScreen(msg.Error)
		return w, nil
	}

	model, cmd := w.progressScreen.Update(msg)
	if ps, ok := model.(*screens.ProgressScreen); ok {
		w.progressScreen = ps
	}

	if w.progressScreen.Cancelled() {
		w.cancelled = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateComplete handles updates in the completion phase.
func (w *Wizard) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.completionScreen.Update(msg)
	if cs, ok := model.(*screens.CompletionScreen); ok {
		w.completionScreen = cs
	}

	if w.completionScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// updateError handles updates in the error phase.
func (w *Wizard) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := w.errorScreen.Update(msg)
	if es, ok := model.(*screens.ErrorScreen); ok {
		w.errorScreen = es
	}

	if w.errorScreen.Done() {
		w.finished = true
		return w, tea.Quit
	}

	return w, cmd
}

// Run starts the interactive wizard for avatar configuration.
// If fromConfig is provided, it loads the configuration from that YAML file.
func Run(fromConfig string) error {
	var job *types.JobConfig

	// Load config if provided
	if fromConfig != "" {
		absPath, err := filepath.Abs(fromConfig)
		if err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}

		loaded, err := LoadFromYAML(absPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		job = loaded
	}

	// Create and run the wizard
	wizard := NewWizard(job)
	p := tea.NewProgram(wizard, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("running wizard: %w", err)
	}

	// Check final state
	if w, ok := finalModel.(*Wizard); ok {
		if w.cancelled {
			return nil // User cancelled, not an error
		}
		if w.err != nil {
			return w.err
		}
	}

	return nil
}
