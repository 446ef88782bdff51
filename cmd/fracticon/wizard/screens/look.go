package screens

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/components"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

// seededOption is the select value meaning "derive from the input".
const seededOption = ""

// LookScreen is the second wizard screen: fractal shape and colours
type LookScreen struct {
	form      *huh.Form
	helpPanel *components.HelpPanel
	job       *types.JobConfig
	width     int
	height    int
	done      bool
	cancelled bool

	// String version for form binding (huh binds to strings)
	colorsStr string
}

// NewLookScreen creates a new look screen
func NewLookScreen(job *types.JobConfig) *LookScreen {
	// Set defaults if not provided
	if job.Family == "" {
		job.Family = "julia"
	}
	if job.Palette == "" {
		job.Palette = "random"
	}
	if job.NumColors == 0 {
		job.NumColors = 5
	}

	s := &LookScreen{
		helpPanel: components.NewHelpPanel(),
		job:       job,
		colorsStr: strconv.Itoa(job.NumColors),
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("family").
				Title("Fractal Family").
				Options(
					huh.NewOption("julia - classic Julia sets", "julia"),
					huh.NewOption("mandelbrot - Mandelbrot set views", "mandelbrot"),
					huh.NewOption("burning-ship - folded flame shapes", "burning-ship"),
					huh.NewOption("tricorn - conjugated symmetry", "tricorn"),
				).
				Value(&job.Family),

			huh.NewSelect[string]().
				Key("preset").
				Title("Preset").
				Options(presetOptions()...).
				Value(&job.Preset),

			huh.NewInput().
				Key("constant").
				Title("Constant (optional)").
				Placeholder("re,im e.g. -0.8,0.156").
				Value(&job.Constant).
				Validate(validateConstant),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("palette").
				Title("Palette").
				Options(paletteOptions()...).
				Value(&job.Palette),

			huh.NewInput().
				Key("colors").
				Title("Palette Colors").
				Value(&s.colorsStr).
				Validate(validatePositiveInt),

			huh.NewConfirm().
				Key("circular").
				Title("Clip to a circle?").
				Value(&job.Circular),
		),
	).WithShowHelp(false).WithShowErrors(true)

	return s
}

// presetOptions lists the seeded choice followed by every named preset.
func presetOptions() []huh.Option[string] {
	opts := []huh.Option[string]{
		huh.NewOption("(seeded from input)", seededOption),
	}
	for _, name := range fracticon.Presets() {
		opts = append(opts, huh.NewOption(name, name))
	}
	return opts
}

func paletteOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, name := range fracticon.PaletteStyles() {
		opts = append(opts, huh.NewOption(name, name))
	}
	return opts
}

func validateConstant(s string) error {
	if s == "" {
		return nil
	}
	_, err := fracticon.ParseConstant(s)
	return err
}

// Init implements tea.Model
func (s *LookScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *LookScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	focused := s.form.GetFocusedField()
	if focused != nil {
		s.helpPanel.SetField(focused.GetKey())
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
		s.syncJobFromForm()
	}

	return s, cmd
}

// syncJobFromForm parses form values back to the job config
func (s *LookScreen) syncJobFromForm() {
	if n, err := strconv.Atoi(s.colorsStr); err == nil {
		s.job.NumColors = n
	}
}

// View implements tea.Model
func (s *LookScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("FRACTICON WIZARD - Look & Palette")

	formView := s.form.View()
	helpView := s.helpPanel.View()

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
func (s *LookScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *LookScreen) Cancelled() bool {
	return s.cancelled
}
