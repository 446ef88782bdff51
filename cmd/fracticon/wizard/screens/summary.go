package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fracticon"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/components"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/types"
)

// SummaryAction represents the action selected on the summary screen
type SummaryAction int

const (
	// SummaryActionBack returns to the setup screen
	SummaryActionBack SummaryAction = iota
	// SummaryActionGenerate renders the avatar
	SummaryActionGenerate
	// SummaryActionSaveConfig saves configuration to YAML file
	SummaryActionSaveConfig
	// SummaryActionCancel exits the wizard
	SummaryActionCancel
)

const (
	actionBack       = "back"
	actionGenerate   = "generate"
	actionSaveConfig = "save_config"
	actionCancel     = "cancel"
)

// previewSize is the grid used for the inline terminal preview. Each
// cell becomes two background-coloured spaces, so 16 rows stay well
// inside an 80x24 terminal next to the settings panel.
const previewSize = 16

var (
	summaryPanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	summaryTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Bold(true).
		MarginBottom(1)

	summaryLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	summaryValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	previewErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	cliCommandStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)
)

// SummaryScreen displays the configuration and a preview before generation
type SummaryScreen struct {
	form      *huh.Form
	job       *types.JobConfig
	preview   string
	action    string
	done      bool
	cancelled bool
	width     int
	height    int
}

// NewSummaryScreen creates a new summary screen
func NewSummaryScreen(job *types.JobConfig) *SummaryScreen {
	s := &SummaryScreen{
		job:     job,
		preview: buildPreview(job),
		action:  actionGenerate, // Default action
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("action").
				Title("Select an action").
				Options(
					huh.NewOption("Generate avatar", actionGenerate),
					huh.NewOption("Save configuration to YAML", actionSaveConfig),
					huh.NewOption("Back to edit", actionBack),
					huh.NewOption("Cancel and exit", actionCancel),
				).
				Value(&s.action),
		),
	).WithShowHelp(false)

	return s
}

// Init implements tea.Model
func (s *SummaryScreen) Init() tea.Cmd {
	return s.form.Init()
}

// Update implements tea.Model
func (s *SummaryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		case "esc":
			// Esc goes back instead of cancelling
			s.action = actionBack
			s.done = true
			return s, nil
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.done = true
	}

	return s, cmd
}

// View implements tea.Model
func (s *SummaryScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("SUMMARY - Review Avatar")

	// Build left panel (settings) and right panel (preview)
	leftPanel := s.buildSettingsSummary()
	rightPanel := s.buildPreviewPanel()

	leftStyled := summaryPanelStyle.Width(42).Render(leftPanel)
	rightStyled := summaryPanelStyle.Render(rightPanel)
	panels := lipgloss.JoinHorizontal(lipgloss.Top, leftStyled, "  ", rightStyled)

	// Build CLI command section
	cliSection := s.buildCLICommand()

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		panels,
		"",
		cliSection,
		"",
		s.form.View(),
		"",
		"Enter: Select action | Esc: Back",
	)

	return content
}

// buildSettingsSummary builds the left panel showing the job settings
func (s *SummaryScreen) buildSettingsSummary() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Avatar Settings"))
	sb.WriteString("\n\n")

	preset := s.job.Preset
	if preset == "" {
		preset = "(seeded)"
	}
	constant := s.job.Constant
	if constant == "" {
		constant = "(seeded)"
	}
	circular := "no"
	if s.job.Circular {
		circular = "yes"
	}

	params := []struct {
		label string
		value string
	}{
		{"Input", s.job.Input},
		{"Output", s.job.Output},
		{"Format", s.job.Format},
		{"Size", fmt.Sprintf("%dpx", s.job.Size)},
		{"Grid", fmt.Sprintf("%d", s.job.GridSize)},
		{"Family", s.job.Family},
		{"Preset", preset},
		{"Constant", constant},
		{"Palette", s.job.Palette},
		{"Colors", fmt.Sprintf("%d", s.job.NumColors)},
		{"Circular", circular},
	}

	for _, p := range params {
		sb.WriteString(summaryLabelStyle.Render(p.label + ": "))
		sb.WriteString(summaryValueStyle.Render(p.value))
		sb.WriteString("\n")
	}

	return sb.String()
}

// buildPreviewPanel builds the right panel showing the avatar preview
func (s *SummaryScreen) buildPreviewPanel() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Preview"))
	sb.WriteString("\n\n")
	sb.WriteString(s.preview)

	return sb.String()
}

// buildPreview renders the avatar at a tiny grid and maps each pixel
// to two background-coloured spaces. Transparent pixels (outside the
// circular mask) are left unstyled.
func buildPreview(job *types.JobConfig) string {
	opts := &fracticon.Options{
		Size:      previewSize,
		GridSize:  previewSize,
		Circular:  job.Circular,
		Family:    job.Family,
		Preset:    job.Preset,
		Palette:   job.Palette,
		NumColors: job.NumColors,
	}
	if job.Constant != "" {
		c, err := fracticon.ParseConstant(job.Constant)
		if err != nil {
			return previewErrorStyle.Render(err.Error())
		}
		opts.Constant = &c
	}

	img, err := fracticon.GenerateImage(job.Input, opts)
	if err != nil {
		return previewErrorStyle.Render(err.Error())
	}

	var sb strings.Builder
	for y := 0; y < previewSize; y++ {
		for x := 0; x < previewSize; x++ {
			px := img.RGBAAt(x, y)
			if px.A == 0 {
				sb.WriteString("  ")
				continue
			}
			cell := lipgloss.NewStyle().
				Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", px.R, px.G, px.B)))
			sb.WriteString(cell.Render("  "))
		}
		if y < previewSize-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// buildCLICommand builds the CLI command equivalent section
func (s *SummaryScreen) buildCLICommand() string {
	var sb strings.Builder

	sb.WriteString(summaryTitleStyle.Render("Equivalent CLI Command"))
	sb.WriteString("\n\n")

	cmd := s.generateCLICommand()

	sb.WriteString(cliCommandStyle.Render(cmd))

	return sb.String()
}

// generateCLICommand generates the equivalent CLI command from the job
func (s *SummaryScreen) generateCLICommand() string {
	var parts []string

	parts = append(parts, "fracticon")
	parts = append(parts, fmt.Sprintf("-input %q", s.job.Input))

	if s.job.Output != "" && s.job.Output != "avatar.png" {
		parts = append(parts, fmt.Sprintf("-o %s", s.job.Output))
	}
	if s.job.Format == "svg" {
		parts = append(parts, "-svg")
	}
	if s.job.Size != 0 && s.job.Size != 128 {
		parts = append(parts, fmt.Sprintf("-size %d", s.job.Size))
	}
	if s.job.GridSize != 0 && s.job.GridSize != 64 {
		parts = append(parts, fmt.Sprintf("-grid %d", s.job.GridSize))
	}
	if s.job.Family != "" && s.job.Family != "julia" {
		parts = append(parts, fmt.Sprintf("-family %s", s.job.Family))
	}
	if s.job.Preset != "" {
		parts = append(parts, fmt.Sprintf("-preset %s", s.job.Preset))
	}
	if s.job.Constant != "" {
		parts = append(parts, fmt.Sprintf("-constant %s", s.job.Constant))
	}
	if s.job.Palette != "" && s.job.Palette != "random" {
		parts = append(parts, fmt.Sprintf("-palette %s", s.job.Palette))
	}
	if s.job.NumColors != 0 && s.job.NumColors != 5 {
		parts = append(parts, fmt.Sprintf("-colors %d", s.job.NumColors))
	}
	if s.job.Circular {
		parts = append(parts, "-circular")
	}

	return strings.Join(parts, " ")
}

// Done returns true if the form was completed
func (s *SummaryScreen) Done() bool {
	return s.done
}

// Cancelled returns true if the user cancelled
func (s *SummaryScreen) Cancelled() bool {
	return s.cancelled
}

// Action returns the selected action
func (s *SummaryScreen) Action() SummaryAction {
	switch s.action {
	case actionBack:
		return SummaryActionBack
	case actionGenerate:
		return SummaryActionGenerate
	case actionSaveConfig:
		return SummaryActionSaveConfig
	case actionCancel:
		return SummaryActionCancel
	default:
		return SummaryActionGenerate
	}
}
