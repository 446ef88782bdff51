package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mrsinham/fracticon/cmd/fracticon/wizard/components"
)

// CompletionMsg is sent when the avatar has been written successfully
type CompletionMsg struct {
	Input      string        // Input the avatar was derived from
	OutputPath string        // File the avatar was written to
	Bytes      int64         // Size of the written file
	Duration   time.Duration // Time taken
}

// ErrorMsg is sent when an error occurs during generation
type ErrorMsg struct {
	Error error
}

// tickMsg drives the elapsed-time display while rendering
type tickMsg time.Time

var (
	progressFileStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	progressElapsedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	cancelHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)
)

// ProgressScreen is shown while the avatar is rendered and written
type ProgressScreen struct {
	output    string
	startTime time.Time
	cancelled bool
	width     int
	height    int
}

// NewProgressScreen creates a new progress screen
func NewProgressScreen(output string) *ProgressScreen {
	return &ProgressScreen{
		output:    output,
		startTime: time.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model
func (s *ProgressScreen) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (s *ProgressScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.cancelled = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case tickMsg:
		return s, tick()
	}

	return s, nil
}

// View implements tea.Model
func (s *ProgressScreen) View() string {
	if s.cancelled {
		return "Cancelled.\n"
	}

	title := components.TitleStyle.Render("Rendering avatar...")

	output := progressFileStyle.Render("Writing to: " + s.output)

	elapsed := time.Since(s.startTime)
	elapsedStr := progressElapsedStyle.Render(fmt.Sprintf("Elapsed: %.1fs", elapsed.Seconds()))

	cancelHint := cancelHintStyle.Render("Press Ctrl+C to cancel")

	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteString("\n\n")
	sb.WriteString(output)
	sb.WriteString("\n")
	sb.WriteString(elapsedStr)
	sb.WriteString("\n\n")
	sb.WriteString(cancelHint)

	return sb.String()
}

// Cancelled returns true if the user cancelled
func (s *ProgressScreen) Cancelled() bool {
	return s.cancelled
}

// Completion screen styles
var (
	completionSuccessStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	completionLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244"))

	completionValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Bold(true)

	completionHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)

	completionCommandStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("236")).
		Foreground(lipgloss.Color("252")).
		Padding(0, 1)

	completionButtonFocusedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color("33")).
		Foreground(lipgloss.Color("255")).
		Padding(0, 2).
		Bold(true)
)

// CompletionScreen displays the completion summary
type CompletionScreen struct {
	input      string
	outputPath string
	bytes      int64
	duration   time.Duration
	done       bool
	width      int
	height     int
}

// NewCompletionScreen creates a new completion screen
func NewCompletionScreen(msg CompletionMsg) *CompletionScreen {
	return &CompletionScreen{
		input:      msg.Input,
		outputPath: msg.OutputPath,
		bytes:      msg.Bytes,
		duration:   msg.Duration,
	}
}

// Init implements tea.Model
func (s *CompletionScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *CompletionScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *CompletionScreen) View() string {
	var sb strings.Builder

	// Success header
	successIcon := completionSuccessStyle.Render("✓")
	successText := completionSuccessStyle.Render("Avatar written!")
	sb.WriteString(successIcon)
	sb.WriteString(" ")
	sb.WriteString(successText)
	sb.WriteString("\n\n")

	// Summary section
	sb.WriteString(components.TitleStyle.Render("Summary:"))
	sb.WriteString("\n")

	stats := []struct {
		label string
		value string
	}{
		{"Input", s.input},
		{"Output", s.outputPath},
		{"File size", formatSize(s.bytes)},
		{"Duration", formatDuration(s.duration)},
	}

	for _, stat := range stats {
		sb.WriteString("  ")
		sb.WriteString(completionLabelStyle.Render(stat.label + ":"))
		sb.WriteString(" ")
		sb.WriteString(completionValueStyle.Render(stat.value))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")

	// Next steps
	sb.WriteString(components.TitleStyle.Render("Next steps:"))
	sb.WriteString("\n")

	viewCmd := completionCommandStyle.Render(fmt.Sprintf("open %s", s.outputPath))
	sb.WriteString("  • View it:    ")
	sb.WriteString(viewCmd)
	sb.WriteString("\n")

	// The output is deterministic, so the regenerate command always
	// reproduces the same file.
	regenCmd := completionCommandStyle.Render(fmt.Sprintf("fracticon -input %q -o %s", s.input, s.outputPath))
	sb.WriteString("  • Regenerate: ")
	sb.WriteString(regenCmd)
	sb.WriteString("\n\n")

	// Exit button
	exitButton := completionButtonFocusedStyle.Render("Exit")
	sb.WriteString(exitButton)
	sb.WriteString("\n\n")
	sb.WriteString(completionHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *CompletionScreen) Done() bool {
	return s.done
}

// formatSize formats bytes as human-readable size
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)

	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// formatDuration formats a render duration, millisecond-scale renders
// included
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// ErrorScreen displays an error that occurred during generation
type ErrorScreen struct {
	err    error
	done   bool
	width  int
	height int
}

var (
	errorTitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)

	errorMessageStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	errorHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Italic(true)
)

// NewErrorScreen creates a new error screen
func NewErrorScreen(err error) *ErrorScreen {
	return &ErrorScreen{
		err: err,
	}
}

// Init implements tea.Model
func (s *ErrorScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ErrorScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "enter", "q":
			s.done = true
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	}

	return s, nil
}

// View implements tea.Model
func (s *ErrorScreen) View() string {
	var sb strings.Builder

	// Error header
	errorIcon := errorTitleStyle.Render("✗")
	errorText := errorTitleStyle.Render("Generation failed")
	sb.WriteString(errorIcon)
	sb.WriteString(" ")
	sb.WriteString(errorText)
	sb.WriteString("\n\n")

	// Error message
	sb.WriteString(components.TitleStyle.Render("Error:"))
	sb.WriteString("\n")
	sb.WriteString("  ")
	sb.WriteString(errorMessageStyle.Render(s.err.Error()))
	sb.WriteString("\n\n")

	// Exit hint
	sb.WriteString(errorHintStyle.Render("Press Enter or q to exit"))

	return sb.String()
}

// Done returns true if the user is finished
func (s *ErrorScreen) Done() bool {
	return s.done
}

// Error returns the error
func (s *ErrorScreen) Error() error {
	return s.err
}
