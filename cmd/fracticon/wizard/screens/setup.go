package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/components"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

// SetupScreen is the first wizard screen: what to render and where
type SetupScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	job       *types.JobConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String versions for form binding (huh binds to strings)
	sizeStr string
	gridStr string
}

// NewSetupScreen creates a new setup screen
func NewSetupScreen(job *types.JobConfig) *SetupScreen {
	// Set defaults if not provided
	if job.Output == "" {
		job.Output = "avatar.png"
	}
	if job.Format == "" {
		job.Format = "png"
	}
	if job.Size == 0 {
		job.Size = 128
	}
	if job.GridSize == 0 {
		job.GridSize = 64
	}

	s := &SetupScreen{
		helpPanel: components.NewHelpPanel(),
		job:       job,
		sizeStr:   strconv.Itoa(job.Size),
		gridStr:   strconv.Itoa(job.GridSize),
	}

	// Create form fields
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("input").
				Title("Input").
				Placeholder("e.g., ada@example.org").
				Value(&job.Input).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("input is required")
					}
					return nil
				}),

			huh.NewInput().
				Key("output").
				Title("Output File").
				Value(&job.Output).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("output path is required")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("format").
				Title("Format").
				Options(
					huh.NewOption("PNG - raster image", "png"),
					huh.NewOption("SVG - vector markup", "svg"),
				).
				Value(&job.Format),
		),
		huh.NewGroup(
			huh.NewInput().
				Key("size").
				Title("Image Size (px)").
				Value(&s.sizeStr).
				Validate(validatePositiveInt),

			huh.NewInput().
				Key("grid").
				Title("Grid Size").
				Value(&s.gridStr).
				Validate(validatePositiveInt),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a number")
	}
	if n <= 0 {
		return fmt.Errorf("must be greater than 0")
	}
	return nil
}

// Init implements tea.Model
func (s *SetupScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SetupScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.helpPanel.SetSize(msg.Width/3, msg.Height/2)
	}

	// Update form
	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	// Update help panel based on focused field
	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	// Check if form is complete
	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncJobFromForm()
	}

	return s, cmd
}

// syncJobFromForm parses form values back to the job config
func (s *SetupScreen) syncJobFromForm() {
	// Parse string values back to ints
	if n, err := strconv.Atoi(s.sizeStr); err == nil {
		s.job.Size = n
	}
	if n, err := strconv.Atoi(s.gridStr); err == nil {
		s.job.GridSize = n
	}
}

// View implements tea.Model
func (s *SetupScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("FRACTICON WIZARD - Avatar Setup")

	// Layout: form on left, help panel on right
	formView := s.form.View()
	helpView := s.helpPanel.View()

	// Simple vertical layout for now
	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		formView,
		"",
		helpView,
		"",
		"Tab: Next field | Enter: Submit | Esc: Cancel",
	)

	return content
}

// Done returns true if the form was completed
func (s *SetupScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SetupScreen) Cancelled() bool {
	return s.cancelled
}

// Job returns the configured job
func (s *SetupScreen) Job() *types.JobConfig {
	return s.job
}
